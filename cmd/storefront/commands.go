package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tair/storefront/internal/storefront"
)

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return uint(id), nil
}

func (c *cli) productsCmd() *cobra.Command {
	var (
		featured bool
		category string
		search   string
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			switch {
			case search != "":
				c.app.HandleSearchInput(ctx, search)
				c.app.FlushSearch()
			case featured:
				c.app.ShowFeatured(ctx)
			case category != "":
				c.app.SelectCategory(ctx, category)
			default:
				c.app.ShowAll(ctx)
				if categories := c.app.Categories(); len(categories) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Categories: %s\n", strings.Join(categories, ", "))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&featured, "featured", false, "show featured products")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&search, "search", "", "search by name, description or category")
	cmd.MarkFlagsMutuallyExclusive("featured", "category", "search")
	return cmd
}

func (c *cli) productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product ID",
		Short: "Show a product with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return notified(c.app.ShowProductDetails(cmd.Context(), id))
		},
	}
}

func (c *cli) cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			c.app.NavigateTo(cmd.Context(), storefront.SectionCart)
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add ID",
			Short: "Add one unit of a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return notified(c.app.AddItem(cmd.Context(), id))
			},
		},
		&cobra.Command{
			Use:   "remove ID",
			Short: "Remove a product from the cart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return c.app.RemoveItem(cmd.Context(), id)
			},
		},
		&cobra.Command{
			Use:   "qty ID DELTA",
			Short: "Change a product's quantity by DELTA, e.g. 2 or -1",
			// negative deltas must not be read as flags
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) != 2 {
					return fmt.Errorf("usage: storefront cart qty ID DELTA")
				}
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				delta, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid delta %q", args[1])
				}
				return c.app.ChangeQuantity(cmd.Context(), id, delta)
			},
		},
	)
	return cmd
}

func (c *cli) checkoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := c.app.Checkout(cmd.Context())
			if err != nil {
				return notified(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order #%d reference %s\n", created.OrderID, created.Reference)
			return nil
		},
	}
}

func (c *cli) ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show your order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.app.Session() == nil {
				return fmt.Errorf("please login to view your orders")
			}
			c.app.NavigateTo(cmd.Context(), storefront.SectionOrders)
			return nil
		},
	}
}

func (c *cli) wishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Show the wishlist",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			c.app.NavigateTo(cmd.Context(), storefront.SectionWishlist)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle ID",
		Short: "Add or remove a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, err = c.app.ToggleWishlist(cmd.Context(), id)
			return err
		},
	})
	return cmd
}

// promptPassword reads a line from stdin when the flag was not given
func promptPassword(cmd *cobra.Command, password string) (string, error) {
	if password != "" {
		return password, nil
	}
	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *cli) registerCmd() *cobra.Command {
	var username, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := promptPassword(cmd, password)
			if err != nil {
				return err
			}
			return notified(c.app.Register(cmd.Context(), username, email, pw))
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password, prompted when empty")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := promptPassword(cmd, password)
			if err != nil {
				return err
			}
			return notified(c.app.Login(cmd.Context(), email, pw))
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password, prompted when empty")
	cmd.MarkFlagRequired("email")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Logout(cmd.Context())
		},
	}
}

func (c *cli) reviewCmd() *cobra.Command {
	var (
		rating  int
		comment string
	)
	cmd := &cobra.Command{
		Use:   "review ID",
		Short: "Review a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, err = c.app.AddReview(cmd.Context(), id, rating, comment)
			return notified(err)
		},
	}
	cmd.Flags().IntVar(&rating, "rating", 0, "rating from 1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "review text")
	cmd.MarkFlagRequired("rating")
	return cmd
}
