package site

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="{{.Page.Lang}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Page.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
:root{--primary-color:#d98ca6;--transparent-primary:rgba(217,140,166,.6)}
body{font-family:Georgia,serif;color:#3b2f2f;background:#fffaf7;line-height:1.6}
a{color:#a8476b}
.site-header{background:#fff;border-bottom:1px solid #f0dfe4;padding:12px 16px}
.site-nav ul{display:flex;gap:16px;list-style:none;flex-wrap:wrap}
.nav-link{text-decoration:none;padding:4px 8px;border-radius:4px}
.nav-link-active{background:var(--primary-color);color:#fff}
.site-main{max-width:960px;margin:0 auto;padding:24px 16px}
.site-footer{text-align:center;padding:24px;color:#8a7a7a;font-size:13px}
h1{font-size:28px;margin-bottom:16px}
h2{font-size:20px;margin:24px 0 8px}
p{margin-bottom:12px}
.home-hero{width:100%;border-radius:8px;margin-bottom:16px}
.story-group{display:flex;gap:1em;margin-bottom:2em}
.story-group-reverse{flex-direction:row-reverse}
.story-text{width:60%;display:flex;flex-direction:column;justify-content:center}
.story-images{width:40%;display:flex;flex-direction:column;gap:1em}
.story-images img{width:100%;border-radius:6px}
.page-split{display:flex;gap:2em}
.contact-form{flex:1;display:flex;flex-direction:column;gap:12px}
.form-field{display:flex;flex-direction:column}
.form-field input,.form-field textarea{padding:8px;border:1px solid #e0cdd3;border-radius:4px}
.form-note{font-size:13px;color:#8a7a7a}
.contact-block{font-style:normal}
.prices table{border-collapse:collapse;width:100%}
.prices td{padding:6px 10px;border-bottom:1px solid #f0dfe4}
.flavors ul{list-style:none}
.gallery-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(160px,1fr));gap:8px}
.gallery-thumb img{width:100%;height:160px;object-fit:cover;border-radius:6px}
.content-error{padding:16px;border:1px solid #e0cdd3;border-radius:6px}
.image-carousel-overlay{position:fixed;top:0;left:0;height:100vh;width:100vw;z-index:100;background:rgba(0,0,0,.5);backdrop-filter:blur(5px);display:flex;justify-content:center;align-items:center}
.image-carousel-close,.image-carousel-prev,.image-carousel-next{position:fixed;z-index:101}
.image-carousel-close{top:25px;left:25px}
.image-carousel-prev{left:25px;top:calc(50vh - 25px)}
.image-carousel-next{right:25px;top:calc(50vh - 25px)}
.image-carousel-control{display:flex;justify-content:center;align-items:center;height:50px;width:50px;border-radius:25px;background:var(--primary-color);color:#fff;text-decoration:none;box-shadow:0 2px 6px rgba(0,0,0,.3)}
.image-carousel-container{max-height:calc(100vh - 200px);display:flex;align-items:center;justify-content:center;width:100vw}
.image-carousel-backdrop{height:100vh;width:100vw;display:block;position:absolute;top:0;left:0;cursor:auto}
.image-carousel-frame{position:relative;display:flex;align-items:center;justify-content:center;height:100vh;margin:auto}
.image-carousel-frame img{max-height:85%;max-width:100%}
.carousel-slide{display:none}
.carousel-slide-active{display:block}
.carousel-dots{position:fixed;bottom:25px;left:0;right:0;display:flex;justify-content:center;gap:8px;z-index:101}
.carousel-dot{width:10px;height:10px;border-radius:5px;border:none;background:#fff;opacity:.5}
.carousel-dot[aria-current]{opacity:1}
@media (max-width:700px){
.story-group,.story-group-reverse,.page-split{flex-direction:column}
.story-text,.story-images{width:100%}
.image-carousel-prev .image-carousel-control,.image-carousel-next .image-carousel-control{background:var(--transparent-primary)}
.image-carousel-container{margin:0}
}
</style>
</head>
<body>
<div id="app">{{.Page.Body}}</div>
{{if .WASM}}<script src="/resources/wasm_exec.js"></script>
<script>
const go = new Go();
WebAssembly.instantiateStreaming(fetch("/resources/app.wasm"), go.importObject).then((r) => go.run(r.instance));
</script>{{end}}
</body>
</html>{{end}}
`
