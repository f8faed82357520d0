//go:build js && wasm

// Command web is the WebAssembly client. It takes over the server-rendered
// page, routes in the browser and listens to the keyboard.
package main

import (
	"syscall/js"

	"github.com/HeyGarrison/cakeelizabethdotcom/console"
	"github.com/HeyGarrison/cakeelizabethdotcom/content"
	"github.com/HeyGarrison/cakeelizabethdotcom/events"
	"github.com/HeyGarrison/cakeelizabethdotcom/locale"
	"github.com/HeyGarrison/cakeelizabethdotcom/pages"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
)

func main() {
	bundle, err := locale.NewBundle()
	if err != nil {
		console.Error("Failed to load translations:", err.Error())
		panic(err)
	}
	// The server writes the negotiated language into <html lang>.
	lang := js.Global().Get("document").Get("documentElement").Get("lang").String()
	text, err := locale.New(bundle, lang)
	if err != nil {
		console.Warn("Unsupported page language", lang, "- falling back to English")
		text, _ = locale.New(bundle, "en")
	}

	deps := pages.Deps{
		Store: content.Embedded(),
		Text:  text,
		Keys:  events.Document(),
	}

	shell := pages.NewShell(deps)
	routerEngine := router.NewEngine(pages.Routes(deps))
	renderer := runtime.NewRenderer(routerEngine, "#app")
	renderer.SetCurrentComponent(shell, "shell")

	if err := routerEngine.Start(shell.SetPage); err != nil {
		console.Error("Failed to start router:", err.Error())
		panic(err)
	}
	renderer.RenderRoot()

	// Keep the Go program running
	select {}
}
