// Package main is the entry point for the news API. It serves the HTTP API
// and provides the migrate and seed commands used to prepare a database.
package main

func main() {
	Execute()
}
