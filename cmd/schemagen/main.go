package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/validation"
)

func main() {
	outDir := flag.String("out", "schemas", "Directory to write the document schemas to")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("schemagen: create output dir: %v", err)
	}

	for _, kind := range domain.Kinds {
		data, err := validation.DocumentSchema(kind)
		if err != nil {
			log.Fatalf("schemagen: %v", err)
		}
		data = append(data, '\n')

		path := filepath.Join(*outDir, kind.String()+".schema.json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Fatalf("schemagen: write schema: %v", err)
		}
		fmt.Printf("✓ Wrote %s\n", path)
	}
}
