package router

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// ParseLocation maps a location fragment such as "/category/home-living" to a
// Page. It never fails: any unrecognised or incomplete shape yields home.
func ParseLocation(fragment string) Page {
	fragment = strings.TrimPrefix(fragment, "#")

	var parts []string
	for _, s := range strings.Split(fragment, "/") {
		if s != "" {
			parts = append(parts, s)
		}
	}

	if len(parts) == 0 {
		return homePage()
	}

	switch {
	case parts[0] == "category" && len(parts) > 1:
		return decoded(PageCategory, ParamSlug, parts[1])
	case parts[0] == "product" && len(parts) > 1:
		// product ids are opaque and passed through as-is
		return Page{Name: PageProduct, Params: map[string]string{ParamID: parts[1]}}
	case parts[0] == "cart":
		return Page{Name: PageCart}
	case parts[0] == "checkout":
		return Page{Name: PageCheckout}
	case parts[0] == "order-confirmation":
		return Page{Name: PageOrderConfirmation}
	case parts[0] == "search" && len(parts) > 1:
		return decoded(PageSearch, ParamQuery, parts[1])
	}

	return homePage()
}

func decoded(name PageName, key, segment string) Page {
	value, err := url.PathUnescape(segment)
	if err != nil || !utf8.ValidString(value) {
		return homePage()
	}
	return Page{Name: name, Params: map[string]string{key: value}}
}

func Home() string {
	return "/"
}

func Category(slug string) string {
	return "/category/" + url.PathEscape(slug)
}

func Product(id string) string {
	return "/product/" + id
}

func Cart() string {
	return "/cart"
}

func Checkout() string {
	return "/checkout"
}

func OrderConfirmation() string {
	return "/order-confirmation"
}

// Search returns the fragment for a trimmed query; ok is false for a blank
// query, in which case callers should not navigate.
func Search(query string) (fragment string, ok bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}
	return "/search/" + url.PathEscape(query), true
}
