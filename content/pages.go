package content

// Page slugs.
const (
	SlugHome               = "home"
	SlugAboutUs            = "about-us"
	SlugContact            = "contact"
	SlugCakePricingFlavors = "cake-pricing-flavors"
)

// Image is a picture with its alternative text.
type Image struct {
	Src string `toml:"src"`
	Alt string `toml:"alt"`
}

// Home is the landing page.
type Home struct {
	Title   string `toml:"title"`
	Tagline string `toml:"tagline"`
	Intro   string `toml:"intro"`
	Hero    Image  `toml:"hero"`
}

// AboutUs tells the bakery's story as alternating text and image groups.
type AboutUs struct {
	Title   string       `toml:"title"`
	Stories []StoryGroup `toml:"story"`
}

// StoryGroup is a block of text next to its pictures. Text is plain
// paragraphs separated by blank lines.
type StoryGroup struct {
	Text   string  `toml:"text"`
	Images []Image `toml:"images"`
}

// Contact is the contact page: form labels and the bakery's address block.
type Contact struct {
	Title   string       `toml:"title"`
	Form    ContactForm  `toml:"form"`
	Details ContactBlock `toml:"contact"`
}

// ContactForm holds the form field labels.
type ContactForm struct {
	Name        string `toml:"name"`
	Email       string `toml:"email"`
	PhoneNumber string `toml:"phone_number"`
	Subject     string `toml:"subject"`
	Message     string `toml:"message"`
	Send        string `toml:"send"`
}

// ContactBlock is the postal and online address of the bakery.
type ContactBlock struct {
	Name    string  `toml:"name"`
	Address Address `toml:"address"`
	Phone   Link    `toml:"phone"`
	Web     Link    `toml:"web"`
}

// Address is a postal address.
type Address struct {
	Street    string `toml:"street"`
	CityState string `toml:"city_state"`
	Zip       string `toml:"zip"`
}

// Link pairs a machine value with its display text.
type Link struct {
	Literal string `toml:"literal"`
	Display string `toml:"display"`
}

// Pricing is the cake pricing and flavors page, including its photo gallery.
type Pricing struct {
	Title   string   `toml:"title"`
	Intro   string   `toml:"intro"`
	Prices  []Price  `toml:"price"`
	Flavors []Flavor `toml:"flavor"`
	Gallery []Image  `toml:"gallery"`
}

// Price is one size of cake.
type Price struct {
	Size   string `toml:"size"`
	Serves string `toml:"serves"`
	Amount string `toml:"amount"`
}

// Flavor is one cake flavor.
type Flavor struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}
