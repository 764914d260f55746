// Package services contains the CoffeeTime business logic on top of the
// SQLite repositories.
//
// AuthService registers accounts, verifies credentials and issues signed
// session tokens that every later call presents. CatalogService reads and
// seeds the recipe catalog. FavoritesService manages per-user favorites and
// checks that the presented session belongs to the user it acts for.
//
// Errors are the sentinels from package common, possibly wrapped; match them
// with errors.Is.
package services
