package main

import (
	"fmt"
	"log"

	"github.com/localnerve/drink-trail/internal/database"
)

// Prints the sqlite DDL GORM generates for the Drink Trail models
func main() {
	db, err := database.OpenMemory()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	// Get the schema
	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table' ORDER BY name").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw("SELECT sql FROM sqlite_master WHERE name = ?", table).Scan(&schema)
		fmt.Println(schema)

		var indexes []string
		db.Raw("SELECT sql FROM sqlite_master WHERE type='index' AND tbl_name = ? AND sql IS NOT NULL", table).Scan(&indexes)
		for _, index := range indexes {
			fmt.Println(index)
		}
	}
}
