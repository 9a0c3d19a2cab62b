package main

// @title           StellarSoil Marketplace API
// @version         1.0
// @description     Farm-to-consumer marketplace with a conversational ordering assistant

// @contact.name   StellarSoil Support
// @contact.email  support@stellarsoil.example

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT authentication using the Bearer scheme. Example: "Bearer {token}"
