// Package cli is the local storefront front end: a line-oriented
// console over the core ports covering browsing, the cart, category
// administration and checkout.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/solemarket/storefront/internal/core/domain"
	"github.com/solemarket/storefront/internal/core/port"
)

type Console struct {
	catalog    port.ProductBrowser
	cart       port.CartEditor
	categories port.CategoryManager
	checkout   port.Checkouter
	prices     port.PriceFormatter

	in  io.Reader
	out io.Writer

	sel  domain.FilterSelection
	sort domain.SortKey
}

func NewConsole(
	catalog port.ProductBrowser,
	cart port.CartEditor,
	categories port.CategoryManager,
	checkout port.Checkouter,
	prices port.PriceFormatter,
	priceCap float64,
	in io.Reader, out io.Writer,
) *Console {
	return &Console{
		catalog:    catalog,
		cart:       cart,
		categories: categories,
		checkout:   checkout,
		prices:     prices,
		in:         in,
		out:        out,
		sel:        domain.NewFilterSelection(priceCap),
		sort:       domain.SortByName,
	}
}

// Run reads commands until EOF, "quit" or context end.
func (c *Console) Run(ctx context.Context) error {
	const op = "Console.Run"

	fmt.Fprintln(c.out, `Sneaker storefront. Type "help" for commands.`)

	scanner := bufio.NewScanner(c.in)
	c.prompt()
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			c.prompt()
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}

		c.dispatch(ctx, args[0], args[1:])
		c.prompt()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Console) prompt() {
	fmt.Fprint(c.out, "> ")
}

func (c *Console) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		c.printHelp()
	case "list":
		c.printProducts()
	case "search":
		c.sel.Search = strings.Join(args, " ")
		c.printProducts()
	case "sort":
		c.setSort(args)
	case "filter":
		c.setFilter(args)
	case "reset":
		c.sel = domain.NewFilterSelection(c.sel.PriceMax)
		c.printProducts()
	case "facets":
		c.printFacets()
	case "add":
		c.addToCart(ctx, args)
	case "rm":
		c.removeFromCart(ctx, args)
	case "qty":
		c.setQuantity(ctx, args)
	case "cart":
		c.printCart()
	case "count":
		fmt.Fprintf(c.out, "%d item(s) in cart\n", c.cart.ItemCount())
	case "clear":
		if err := c.cart.Clear(ctx); err != nil {
			c.printErr(err)
		}
	case "checkout":
		c.doCheckout(ctx)
	case "cat":
		c.manageCategories(ctx, args)
	default:
		fmt.Fprintf(c.out, "unknown command %q, try \"help\"\n", cmd)
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `browsing:
  list                           show products for the current filters
  search [text]                  set or clear the search text
  sort name|price-low|price-high|rating
  filter category|brand|availability <value>   toggle a facet value
  filter price <min> <max>       set the price range
  reset                          drop all filters
  facets                         show available filter options
cart:
  add <id> [qty]   rm <id>   qty <id> <n>   cart   count   clear   checkout
admin:
  cat list [all]   cat add <name...>   cat rename <id> <name...>
  cat toggle <id>  cat rm <id>
quit
`)
}

func (c *Console) printProducts() {
	ps := c.catalog.Browse(c.sel, c.sort)
	if len(ps) == 0 {
		fmt.Fprintln(c.out, "no products match")
		return
	}
	for _, p := range ps {
		rating := "unrated"
		if p.Rating != nil {
			rating = fmt.Sprintf("%.1f", *p.Rating)
		}
		fmt.Fprintf(c.out, "[%s] %-24s %-10s %10s  %-12s rating %s\n",
			p.ID, p.Name, p.Brand, c.prices.Format(p.Price), p.Availability, rating)
	}
	fmt.Fprintf(c.out, "%d product(s) found\n", len(ps))
}

func (c *Console) setSort(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: sort name|price-low|price-high|rating")
		return
	}
	switch key := domain.SortKey(args[0]); key {
	case domain.SortByName, domain.SortByPriceAsc,
		domain.SortByPriceDesc, domain.SortByRating:
		c.sort = key
		c.printProducts()
	default:
		fmt.Fprintf(c.out, "unknown sort key %q\n", args[0])
	}
}

func (c *Console) setFilter(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "usage: filter category|brand|availability <value> | filter price <min> <max>")
		return
	}

	switch facet, value := args[0], strings.Join(args[1:], " "); facet {
	case "category":
		c.sel.Categories = toggle(c.sel.Categories, value)
	case "brand":
		c.sel.Brands = toggle(c.sel.Brands, value)
	case "availability":
		c.sel.Availability = toggle(c.sel.Availability, domain.Availability(value))
	case "price":
		if len(args) != 3 {
			fmt.Fprintln(c.out, "usage: filter price <min> <max>")
			return
		}
		min, errMin := strconv.ParseFloat(args[1], 64)
		max, errMax := strconv.ParseFloat(args[2], 64)
		if errMin != nil || errMax != nil || min > max {
			fmt.Fprintln(c.out, "invalid price range")
			return
		}
		c.sel.PriceMin, c.sel.PriceMax = min, max
	default:
		fmt.Fprintf(c.out, "unknown facet %q\n", facet)
		return
	}
	c.printProducts()
}

func toggle[T comparable](vs []T, v T) []T {
	if i := slices.Index(vs, v); i >= 0 {
		return slices.Delete(vs, i, i+1)
	}
	return append(vs, v)
}

func (c *Console) printFacets() {
	f := c.catalog.Facets()
	fmt.Fprintf(c.out, "categories:   %s\n", strings.Join(f.Categories, ", "))
	fmt.Fprintf(c.out, "brands:       %s\n", strings.Join(f.Brands, ", "))
	fmt.Fprintf(c.out, "price:        %s – %s\n",
		c.prices.Format(f.PriceMin), c.prices.Format(f.PriceMax))
	states := make([]string, 0, len(f.Availability))
	for _, a := range f.Availability {
		states = append(states, string(a))
	}
	fmt.Fprintf(c.out, "availability: %s\n", strings.Join(states, ", "))
}

func (c *Console) addToCart(ctx context.Context, args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(c.out, "usage: add <id> [qty]")
		return
	}

	p, ok := c.catalog.Product(args[0])
	if !ok {
		fmt.Fprintf(c.out, "no product with id %q\n", args[0])
		return
	}

	qty := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(c.out, "quantity must be a number")
			return
		}
		qty = n
	}

	if err := c.cart.Add(ctx, p, qty); err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			fmt.Fprintln(c.out, "quantity must be at least 1")
			return
		}
		c.printErr(err)
		return
	}
	fmt.Fprintf(c.out, "added %s ×%d\n", p.Name, qty)
}

func (c *Console) removeFromCart(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: rm <id>")
		return
	}
	if err := c.cart.Remove(ctx, args[0]); err != nil {
		c.printErr(err)
	}
}

func (c *Console) setQuantity(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "usage: qty <id> <n>")
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(c.out, "quantity must be a number")
		return
	}
	if err := c.cart.SetQuantity(ctx, args[0], n); err != nil {
		c.printErr(err)
	}
}

func (c *Console) printCart() {
	cart := c.cart.Cart()
	if cart.IsEmpty() {
		fmt.Fprintln(c.out, "cart is empty")
		return
	}
	for _, it := range cart.Items {
		fmt.Fprintf(c.out, "[%s] %-24s ×%-3d %10s\n",
			it.Product.ID, it.Product.Name, it.Quantity,
			c.prices.Format(it.Product.Price*float64(it.Quantity)))
	}
	fmt.Fprintf(c.out, "subtotal: %s\n", c.prices.Format(cart.Subtotal))
	fmt.Fprintf(c.out, "total:    %s\n", c.prices.Format(cart.Total))
}

func (c *Console) doCheckout(ctx context.Context) {
	res, err := c.checkout.Checkout(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			fmt.Fprintln(c.out, "cart is empty")
			return
		}
		c.printErr(err)
		return
	}
	fmt.Fprintf(c.out, "checkout %s, order %s\n", res.Status, res.OrderRef)
}

func (c *Console) manageCategories(ctx context.Context, args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		cs := c.categories.Active()
		if len(args) > 1 && args[1] == "all" {
			cs = c.categories.List()
		}
		for _, cat := range cs {
			state := "active"
			if !cat.Active {
				state = "inactive"
			}
			fmt.Fprintf(c.out, "[%s] %-20s %-8s %s\n", cat.ID, cat.Name, state, cat.Description)
		}
	case "add":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "usage: cat add <name...>")
			return
		}
		cat, err := c.categories.Add(ctx, strings.Join(args[1:], " "), "", true)
		if err != nil {
			c.printErr(err)
			return
		}
		fmt.Fprintf(c.out, "created category %s\n", cat.ID)
	case "rename":
		if len(args) < 3 {
			fmt.Fprintln(c.out, "usage: cat rename <id> <name...>")
			return
		}
		name := strings.Join(args[2:], " ")
		err := c.categories.Edit(ctx, args[1], domain.CategoryPatch{Name: &name})
		c.reportCategoryErr(err)
	case "toggle":
		if len(args) != 2 {
			fmt.Fprintln(c.out, "usage: cat toggle <id>")
			return
		}
		err := c.toggleCategory(ctx, args[1])
		c.reportCategoryErr(err)
	case "rm":
		if len(args) != 2 {
			fmt.Fprintln(c.out, "usage: cat rm <id>")
			return
		}
		if err := c.categories.Delete(ctx, args[1]); err != nil {
			c.printErr(err)
		}
	default:
		fmt.Fprintf(c.out, "unknown subcommand %q\n", args[0])
	}
}

func (c *Console) toggleCategory(ctx context.Context, id string) error {
	for _, cat := range c.categories.List() {
		if cat.ID == id {
			active := !cat.Active
			return c.categories.Edit(ctx, id, domain.CategoryPatch{Active: &active})
		}
	}
	return domain.ErrCategoryNotFound
}

func (c *Console) reportCategoryErr(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrCategoryNotFound) {
		fmt.Fprintln(c.out, "no such category")
		return
	}
	c.printErr(err)
}

func (c *Console) printErr(err error) {
	slog.Error("command failed", "err", err)
	fmt.Fprintf(c.out, "error: %v\n", err)
}
