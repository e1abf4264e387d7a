// README: Small demo; plans a route between two spoken locations and prints the steps.
package main

import (
	"fmt"
	"os"

	"campusnav/internal/modules/navigation"
)

func main() {
	from := "Main entrance"
	to := "Room 205"
	if len(os.Args) == 3 {
		from, to = os.Args[1], os.Args[2]
	}

	svc := navigation.NewService()
	route := svc.Plan(from, to)

	fmt.Printf("From: %s\nTo:   %s\n", route.Buildings[0], route.Buildings[1])
	fmt.Printf("Estimated time: %s (%s)\n\n", route.EstimatedTime, route.Distance)
	for i, step := range route.Steps {
		fmt.Printf("%d. %s\n", i+1, step.Instruction)
		if step.Details != "" {
			fmt.Printf("   %s\n", step.Details)
		}
	}
}
