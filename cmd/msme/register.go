package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/manoharask/msme/internal/store"
	"github.com/manoharask/msme/internal/taxonomy"
)

var (
	registerID       string
	registerName     string
	registerCity     string
	registerState    string
	registerMobile   string
	registerEmail    string
	registerAddress  string
	registerProducts []string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register an enterprise and classify it into a category",
	Long: `Register creates or updates an enterprise in the graph. The product
list is classified into an ONDC category and the enterprise is linked to
it; re-registering with different products moves the enterprise to the
new category.

Examples:
  # Register a new enterprise
  msme register --name "Hoodhyam Ujhyam" --city Chennai --product "leather belts" --product wallets

  # Update an existing enterprise by ID
  msme register --id MSE143022 --name "Hoodhyam Ujhyam" --city Chennai --product "cotton shirts"`,
	RunE: runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if registerName == "" || registerCity == "" || len(registerProducts) == 0 {
		return fmt.Errorf("--name, --city and at least one --product are required")
	}

	st, client, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	id := registerID
	if id == "" {
		id = "MSE" + strings.ToUpper(uuid.New().String()[:6])
	}

	classifier := taxonomy.NewClassifier(taxonomy.NewStoreRepository(st), slog.Default())
	code, name := classifier.Classify(ctx, registerProducts, registerName, registerCity)

	e := store.Enterprise{
		ID:           id,
		Name:         registerName,
		City:         registerCity,
		State:        registerState,
		Mobile:       registerMobile,
		Email:        registerEmail,
		Products:     registerProducts,
		CategoryCode: code,
		CategoryName: name,
	}
	if registerAddress != "" {
		e.Address = store.RawAddress(registerAddress)
	}

	if err := st.SaveEnterprise(ctx, e); err != nil {
		return err
	}

	cmd.Printf("Registered %s (%s) in category %s %s\n", e.Name, e.ID, code, name)
	return nil
}

func init() {
	registerCmd.Flags().StringVar(&registerID, "id", "", "Enterprise ID (generated when omitted)")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Business name")
	registerCmd.Flags().StringVar(&registerCity, "city", "", "City")
	registerCmd.Flags().StringVar(&registerState, "state", "", "State")
	registerCmd.Flags().StringVar(&registerMobile, "mobile", "", "Contact mobile number")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Contact email")
	registerCmd.Flags().StringVar(&registerAddress, "address", "", "Postal address")
	registerCmd.Flags().StringArrayVar(&registerProducts, "product", nil, "Product or service offered (repeatable)")
}
