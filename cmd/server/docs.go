package main

// @title Storefront API
// @version 1.0
// @description Catalog, accounts, orders and reviews for the storefront client

// @contact.name API Support
// @contact.url http://github.com/tair/storefront

// @host localhost:3000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Products
// @tag.description Catalog listing, search and details

// @tag.name Auth
// @tag.description Registration, login and session verification

// @tag.name Orders
// @tag.description Checkout and order history

// @tag.name Reviews
// @tag.description Product reviews

// @tag.name Health
// @tag.description Health check endpoints
