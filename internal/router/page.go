package router

type PageName string

const (
	PageHome              PageName = "home"
	PageCategory          PageName = "category"
	PageSearch            PageName = "search"
	PageProduct           PageName = "product"
	PageCart              PageName = "cart"
	PageCheckout          PageName = "checkout"
	PageOrderConfirmation PageName = "order-confirmation"
)

const (
	ParamSlug  = "slug"
	ParamID    = "id"
	ParamQuery = "query"
)

// Page is a parsed location. Params is nil for pages without parameters.
type Page struct {
	Name   PageName
	Params map[string]string
}

func (p Page) Param(key string) string {
	return p.Params[key]
}

func (p Page) Equal(other Page) bool {
	if p.Name != other.Name || len(p.Params) != len(other.Params) {
		return false
	}
	for k, v := range p.Params {
		if ov, ok := other.Params[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

func homePage() Page {
	return Page{Name: PageHome}
}
