// jerseyctl is the storefront's client-side companion: it keeps the local
// wishlist (the CLI equivalent of the browser's persisted liked set) and hands
// purchases off to the external Google Form, talking to a running API server
// for catalog data.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"jersey-hub/checkout"
	"jersey-hub/config"
	"jersey-hub/models"
	"jersey-hub/wishlist"
)

var (
	apiURL string
	noOpen bool

	customerName  string
	customerEmail string
	customerPhone string
	size          string
)

var rootCmd = &cobra.Command{
	Use:   "jerseyctl",
	Short: "Wishlist and checkout companion for the jersey storefront API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
	},
}

func openWishlist() *wishlist.Store {
	return wishlist.NewStore(wishlist.NewFileStorage(config.AppConfig.WishlistFile))
}

func fetchJersey(id int) (*models.Jersey, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(fmt.Sprintf("%s/api/jerseys/%d", apiURL, id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("jersey %d not found", id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from API", resp.StatusCode)
	}

	var jersey models.Jersey
	if err := json.NewDecoder(resp.Body).Decode(&jersey); err != nil {
		return nil, err
	}
	return &jersey, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid jersey id %q", arg)
	}
	return id, nil
}

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Manage the locally persisted wishlist",
}

var wishlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show wishlist entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openWishlist()
		items := store.Items()
		if len(items) == 0 {
			fmt.Println("Wishlist is empty")
			return nil
		}
		for _, it := range items {
			fmt.Printf("%4d  %-35s %-25s %s\n", it.ID, it.Name, it.Team, checkout.FormatPrice(it.Price))
		}
		fmt.Printf("%d item(s)\n", store.Count())
		return nil
	},
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <jersey-id>",
	Short: "Add a jersey to the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		jersey, err := fetchJersey(id)
		if err != nil {
			return err
		}

		store := openWishlist()
		added := store.Add(wishlist.Item{
			ID:       jersey.ID,
			Name:     jersey.Name,
			Price:    jersey.Price,
			ImageURL: jersey.ImageURL,
			Team:     jersey.Team,
		})
		if !added {
			fmt.Printf("%s is already on the wishlist\n", jersey.Name)
			return nil
		}
		fmt.Printf("Added %s (%s)\n", jersey.Name, checkout.FormatPrice(jersey.Price))
		return nil
	},
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "remove <jersey-id>",
	Short: "Remove a jersey from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store := openWishlist()
		if !store.Contains(id) {
			fmt.Printf("Jersey %d is not on the wishlist\n", id)
			return nil
		}
		store.Remove(id)
		fmt.Printf("Removed jersey %d\n", id)
		return nil
	},
}

var wishlistClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the wishlist",
	RunE: func(cmd *cobra.Command, args []string) error {
		openWishlist().Clear()
		fmt.Println("Wishlist cleared")
		return nil
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <jersey-id>",
	Short: "Open the prefilled order form for a jersey",
	Long: `Builds the external Google Form deep link for the given jersey and opens it
in the browser. The form is the system of record for the purchase; nothing is
written back to the API.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		jersey, err := fetchJersey(id)
		if err != nil {
			return err
		}

		link := checkout.BuildFormURL(checkout.ConfigFromApp(), checkout.FormData{
			JerseyName:    jersey.Name,
			JerseyPrice:   checkout.FormatPrice(jersey.Price),
			CustomerName:  customerName,
			CustomerEmail: customerEmail,
			CustomerPhone: customerPhone,
			Size:          size,
		})

		fmt.Println(link)
		if noOpen {
			return nil
		}
		return checkout.Open(link)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "base URL of the storefront API")

	buyCmd.Flags().BoolVar(&noOpen, "no-open", false, "print the form URL instead of opening a browser")
	buyCmd.Flags().StringVar(&customerName, "name", "", "customer name to prefill")
	buyCmd.Flags().StringVar(&customerEmail, "email", "", "customer email to prefill")
	buyCmd.Flags().StringVar(&customerPhone, "phone", "", "customer phone to prefill")
	buyCmd.Flags().StringVar(&size, "size", "", "jersey size to prefill")

	wishlistCmd.AddCommand(wishlistListCmd, wishlistAddCmd, wishlistRemoveCmd, wishlistClearCmd)
	rootCmd.AddCommand(wishlistCmd, buyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
