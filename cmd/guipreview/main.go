package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/JWeinelt/codelib/pkg/helpers"
)

func main() {
	var f helpers.Flags
	helpers.RegisterFlags(&f)
	flag.Parse()

	l := helpers.NewLoader(f)

	if f.List {
		names, err := l.Names()
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if f.Menu == "" {
		if _, err := l.LoadAll(); err != nil {
			log.Fatal(err)
		}
		log.Fatalf("no menu given, use -m <name> or -l to list the menus in %s", l.Dir())
	}

	m, err := l.Get(f.Menu)
	if err != nil {
		log.Fatal(err)
	}
	b, err := m.Builder()
	if err != nil {
		log.Fatalf("menu %s: %v", f.Menu, err)
	}
	helpers.Open(b, helpers.NewViewer(f))
}
