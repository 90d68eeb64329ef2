// Command example demonstrates declaring, inspecting, and exporting candv
// containers.
package main

import (
	"fmt"
	"os"

	"github.com/o3bvv/candv"
	"github.com/o3bvv/candv/lib/export"
)

// supportedLanguages declares a flat container of verbose value constants.
type supportedLanguages struct {
	candv.Values[string]
	EN *candv.VerboseValueConstant[string]
	RU *candv.VerboseValueConstant[string]
	JA *candv.VerboseValueConstant[string]
}

// Languages enumerates the languages the application ships with.
var Languages = candv.Register("Languages", &supportedLanguages{
	EN: candv.NewVerboseValue("en", "English", "the default language"),
	RU: candv.NewVerboseValue("ru", "Russian", ""),
	JA: candv.NewVerboseValue("ja", "Japanese", ""),
})

// Weapons shows a nested hierarchy built programmatically: the GUNS node is
// both a member of Weapons and a container of its own.
var Weapons = candv.New("Weapons",
	candv.M("SWORD", candv.NewSimple()),
	candv.M("GUNS", candv.NewVerbose("Guns", "ranged weapons").ToGroup(
		candv.M("PISTOL", candv.NewSimple()),
		candv.M("RIFLE", candv.NewSimple()),
	)),
)

func main() {
	// Lookup by name and by value.
	en, err := Languages.Get("EN")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("by name:  %s\n", en)

	ru, err := Languages.GetByValue("ru")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("by value: %s (%s)\n", ru, Languages.RU.VerboseName())

	// Enumeration preserves declaration order.
	fmt.Printf("names:    %v\n", Languages.Names())
	fmt.Printf("values:   %v\n", Languages.AllValues())

	// Walking a hierarchy.
	guns, _ := Weapons.Get("GUNS")
	group := guns.(*candv.Group)
	fmt.Printf("group:    %s with members %v\n", group.FullName(), group.Names())

	// Exporting to an interchange format.
	data, err := export.JSON(Weapons)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("exported:\n%s\n", data)
}
