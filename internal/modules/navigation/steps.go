// README: Step synthesis from curated building-pair scripts.
package navigation

import "fmt"

type pair struct {
	from string
	to   string
}

// pairScripts holds the curated 3-step transitions. The table is directed and
// deliberately not symmetric: only Science->Main has a curated reverse.
// Uncovered pairs fall back to the generic script.
var pairScripts = map[pair][]Step{
	{BuildingMain, BuildingScience}: {
		{Instruction: "Exit the Main Building through the east exit", Details: "Head towards the main hallway on the first floor"},
		{Instruction: "Walk straight across the courtyard", Details: "The Science Building will be directly ahead"},
		{Instruction: "Enter the Science Building through the main entrance", Details: "Look for the building labeled \"Science\""},
	},
	{BuildingMain, BuildingNorth}: {
		{Instruction: "Exit the Main Building through the north exit", Details: "Head towards the north side of the building"},
		{Instruction: "Cross the walkway to the North Building", Details: "Follow the covered walkway"},
		{Instruction: "Enter the North Building", Details: "The entrance will be on your right"},
	},
	{BuildingMain, BuildingSouth}: {
		{Instruction: "Exit the Main Building through the south exit", Details: "Head towards the south side of the building"},
		{Instruction: "Cross the walkway to the South Building", Details: "Follow the covered walkway"},
		{Instruction: "Enter the South Building", Details: "The entrance will be on your left"},
	},
	{BuildingScience, BuildingMain}: {
		{Instruction: "Exit the Science Building through the main entrance", Details: "Head towards the west side of the building"},
		{Instruction: "Walk straight across the courtyard", Details: "The Main Building will be directly ahead"},
		{Instruction: "Enter the Main Building through the east entrance", Details: "Look for the main entrance doors"},
	},
}

// synthesizeSteps builds the ordered direction list for a resolved building
// pair. The destination's raw text decides the final step: a room token yields
// a "Find Room" step, anything else a verbatim "Locate your destination" step.
func synthesizeSteps(fromBuilding, toBuilding, destination string) []Step {
	var steps []Step

	if fromBuilding == toBuilding {
		steps = append(steps, Step{
			Instruction: fmt.Sprintf("You're already in the %s", toBuilding),
			Details:     "Look for room signs or ask for directions to your specific room.",
		})
	} else if script, ok := pairScripts[pair{fromBuilding, toBuilding}]; ok {
		steps = append(steps, script...)
	} else {
		steps = append(steps,
			Step{Instruction: fmt.Sprintf("Exit the %s", fromBuilding), Details: "Head towards the main exit"},
			Step{Instruction: fmt.Sprintf("Walk to the %s", toBuilding), Details: "Follow the campus pathways and signs"},
			Step{Instruction: fmt.Sprintf("Enter the %s", toBuilding), Details: "Look for the main entrance"},
		)
	}

	if d, ok := extractRoom(destination); ok {
		steps = append(steps, Step{
			Instruction: fmt.Sprintf("Find Room %s", d.Room),
			Details:     fmt.Sprintf("Check the room numbers on each floor. Room %s should be clearly marked.", d.Room),
		})
	} else {
		steps = append(steps, Step{
			Instruction: fmt.Sprintf("Locate your destination: %s", destination),
			Details:     "Look for signs or ask for directions if needed",
		})
	}

	return steps
}
