package main

import (
	"context"
	"fmt"
	"github.com/nikolayk812/luxe-storefront/internal/app"
	"github.com/nikolayk812/luxe-storefront/internal/catalog"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/nikolayk812/luxe-storefront/internal/router"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"strings"
)

const help = `commands:
  go <fragment>        navigate, e.g. go /category/fashion
  search <text>        search products by name
  page                 show the current page
  sort <key>           default | price-asc | price-desc | rating
  add <id>             add a product to the cart
  inc <id> / dec <id>  change a line's quantity by one
  rm <id>              remove a line
  clear                empty the cart
  cart                 go to the cart
  checkout <file>      place an order with the address in a YAML file
  order                show the last placed order
  quit`

type shell struct {
	front *app.Storefront
	out   io.Writer
}

// exec runs one command line and reports whether the shell should stop.
func (s *shell) exec(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	var err error

	switch cmd {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(s.out, help)
		return false
	case "go":
		s.front.Navigate(arg)
	case "search":
		if fragment, ok := router.Search(arg); ok {
			s.front.Navigate(fragment)
		}
	case "page":
	case "sort":
		s.front.SetSort(catalog.ParseSortKey(arg))
	case "add":
		err = s.front.AddProduct(ctx, domain.ProductID(arg))
	case "inc":
		err = s.front.Cart().UpdateQuantity(ctx, domain.ProductID(arg), 1)
	case "dec":
		err = s.front.Cart().UpdateQuantity(ctx, domain.ProductID(arg), -1)
	case "rm":
		err = s.front.Cart().RemoveFromCart(ctx, domain.ProductID(arg))
	case "clear":
		err = s.front.Cart().ClearCart(ctx)
	case "cart":
		s.front.Navigate(router.Cart())
	case "checkout":
		err = s.checkout(ctx, arg)
	case "order":
		s.front.Navigate(router.OrderConfirmation())
	default:
		fmt.Fprintf(s.out, "unknown command %q, try help\n", cmd)
		return false
	}

	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}

	s.render(ctx)

	return false
}

func (s *shell) checkout(ctx context.Context, path string) error {
	if s.front.Page().Name != router.PageCheckout {
		s.front.Navigate(router.Checkout())
	}
	if path == "" {
		return fmt.Errorf("usage: checkout <address.yaml>")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}

	var addr domain.Address
	if err := yaml.Unmarshal(raw, &addr); err != nil {
		return fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	_, err = s.front.PlaceOrder(ctx, addr, domain.PaymentCashOnDelivery)
	return err
}

func (s *shell) render(ctx context.Context) {
	v := s.front.View(ctx)

	fmt.Fprintf(s.out, "── %s  [%s]  cart: %d\n", v.Page.Name, s.front.Location(), v.CartCount)

	switch v.Page.Name {
	case router.PageHome:
		for _, c := range v.Categories {
			fmt.Fprintf(s.out, "  category %-16s %s\n", c.Slug, c.Name)
		}
		s.products(v.Featured)
	case router.PageCategory, router.PageSearch:
		if v.Category != nil {
			fmt.Fprintf(s.out, "  %s\n", v.Category.Name)
		}
		if v.Query != "" {
			fmt.Fprintf(s.out, "  results for %q\n", v.Query)
		}
		fmt.Fprintf(s.out, "  %d product(s), sort %s\n", len(v.Products), v.Sort)
		s.products(v.Products)
	case router.PageProduct:
		if v.NotFound {
			fmt.Fprintln(s.out, "  Product not found")
			return
		}
		p := v.Detail.Product
		fmt.Fprintf(s.out, "  %s by %s  $%s", p.Name, p.Brand, p.Price.StringFixed(2))
		if d := catalog.Discount(p); d > 0 {
			fmt.Fprintf(s.out, "  (-%d%%)", d)
		}
		fmt.Fprintf(s.out, "\n  %s\n", p.Description)
		if len(v.Detail.Related) > 0 {
			fmt.Fprintln(s.out, "  related:")
			s.products(v.Detail.Related)
		}
	case router.PageCart, router.PageCheckout:
		for _, l := range v.Lines {
			fmt.Fprintf(s.out, "  %-12s %-28s %3d × $%s = $%s\n",
				l.ID, l.Name, l.Quantity, l.Price.StringFixed(2), l.Subtotal().StringFixed(2))
		}
		fmt.Fprintf(s.out, "  subtotal %s\n  shipping %s\n  total    %s\n",
			v.Quote.Subtotal, v.Quote.Shipping, v.Quote.Total)
	case router.PageOrderConfirmation:
		if v.Order == nil {
			fmt.Fprintln(s.out, "  no order placed yet")
			return
		}
		fmt.Fprintf(s.out, "  order %s confirmed, total $%s\n", v.Order.ID, v.Order.Total.StringFixed(2))
	}
}

func (s *shell) products(products []domain.Product) {
	for _, p := range products {
		fmt.Fprintf(s.out, "  %-12s %-28s $%8s  ★%.1f\n", p.ID, p.Name, p.Price.StringFixed(2), p.Rating)
	}
}
