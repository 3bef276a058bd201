package main

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/foodorder/internal/domain/model"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func extras(pairs ...string) []model.CustomizationDraft {
	out := make([]model.CustomizationDraft, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.CustomizationDraft{Name: pairs[i], Price: price(pairs[i+1])})
	}
	return out
}

// sampleMenu is the starter menu written by the menu command.
var sampleMenu = []model.MenuItemDraft{
	{
		Name:           "Classic Burger",
		Category:       "main",
		Description:    "Juicy beef patty with lettuce, tomato, and special sauce",
		BasePrice:      price("12.99"),
		Customizations: extras("Extra Cheese", "1.50", "Bacon", "2.00", "Avocado", "1.50", "No Onions", "0"),
	},
	{
		Name:           "Margherita Pizza",
		Category:       "main",
		Description:    "Fresh mozzarella, basil and tomato sauce on a crispy crust",
		BasePrice:      price("14.99"),
		Customizations: extras("Extra Cheese", "2.00", "Pepperoni", "2.50", "Mushrooms", "1.50", "Olives", "1.00"),
	},
	{
		Name:           "Caesar Salad",
		Category:       "appetizer",
		Description:    "Romaine lettuce with parmesan, croutons and Caesar dressing",
		BasePrice:      price("8.99"),
		Customizations: extras("Grilled Chicken", "3.50", "Shrimp", "4.50", "Extra Parmesan", "1.00"),
	},
	{
		Name:           "Chicken Wings",
		Category:       "appetizer",
		Description:    "Crispy wings tossed in your choice of sauce",
		BasePrice:      price("10.99"),
		Customizations: extras("Buffalo Sauce", "0", "BBQ Sauce", "0", "Honey Garlic", "0", "Extra Spicy", "0.50"),
	},
	{
		Name:           "French Fries",
		Category:       "side",
		Description:    "Golden fries with sea salt",
		BasePrice:      price("4.99"),
		Customizations: extras("Cheese Sauce", "1.50", "Bacon Bits", "2.00", "Cajun Seasoning", "0.50"),
	},
	{
		Name:           "Onion Rings",
		Category:       "side",
		Description:    "Battered onion rings with dipping sauce",
		BasePrice:      price("5.99"),
		Customizations: extras("Ranch Dip", "0.50", "Spicy Mayo", "0.50"),
	},
	{
		Name:           "Coca-Cola",
		Category:       "drink",
		Description:    "Classic cola",
		BasePrice:      price("2.99"),
		Customizations: extras("Large", "1.00", "Extra Ice", "0", "No Ice", "0"),
	},
	{
		Name:           "Lemonade",
		Category:       "drink",
		Description:    "Fresh-squeezed lemonade",
		BasePrice:      price("3.49"),
		Customizations: extras("Large", "1.00", "Strawberry", "0.50", "Mint", "0.50"),
	},
	{
		Name:           "Chocolate Cake",
		Category:       "dessert",
		Description:    "Chocolate cake with chocolate frosting",
		BasePrice:      price("6.99"),
		Customizations: extras("Ice Cream", "2.00", "Whipped Cream", "1.00", "Extra Chocolate Sauce", "0.50"),
	},
	{
		Name:           "Apple Pie",
		Category:       "dessert",
		Description:    "Warm apple pie with a flaky crust",
		BasePrice:      price("5.99"),
		Customizations: extras("Vanilla Ice Cream", "2.00", "Caramel Sauce", "0.50", "Warmed", "0"),
	},
}

type demoCustomer struct {
	Name   string
	Phone  string
	Status model.OrderStatus
}

// demoCustomers are cycled through when placing demo orders. Status is the
// state the order is advanced to after placement.
var demoCustomers = []demoCustomer{
	{Name: "John Smith", Phone: "+1234567890", Status: model.OrderStatusPending},
	{Name: "Sarah Johnson", Status: model.OrderStatusInProgress},
	{Name: "Mike Davis", Phone: "+1987654321", Status: model.OrderStatusPending},
	{Name: "Lisa Chen", Phone: "+1555123456", Status: model.OrderStatusCompleted},
	{Name: "Alice Brown", Phone: "+1555987654", Status: model.OrderStatusPending},
	{Name: "Bob Wilson", Status: model.OrderStatusInProgress},
	{Name: "Emma Davis", Phone: "+1444555666", Status: model.OrderStatusPending},
}
