package navigation

import (
	"reflect"
	"testing"
)

func TestService_Plan_SameBuilding(t *testing.T) {
	s := NewService()
	route := s.Plan("Main entrance", "Room 150")

	if route.Buildings != [2]string{BuildingMain, BuildingMain} {
		t.Fatalf("unexpected buildings: %v", route.Buildings)
	}
	if len(route.Steps) != 2 {
		t.Fatalf("expected 2 steps (already-in-building + find room), got %d", len(route.Steps))
	}
	if route.Steps[0].Instruction != "You're already in the Main Building" {
		t.Errorf("unexpected first step: %q", route.Steps[0].Instruction)
	}
	if route.Steps[1].Instruction != "Find Room 150" {
		t.Errorf("unexpected final step: %q", route.Steps[1].Instruction)
	}
	// 2 steps * 2 min, no building transfer.
	if route.EstimatedTime != "4 min" {
		t.Errorf("EstimatedTime = %q, want %q", route.EstimatedTime, "4 min")
	}
	if route.Distance != "Same building" {
		t.Errorf("Distance = %q, want %q", route.Distance, "Same building")
	}
}

func TestService_Plan_CuratedPair(t *testing.T) {
	s := NewService()
	route := s.Plan("Main entrance", "Room 205")

	if route.Buildings != [2]string{BuildingMain, BuildingScience} {
		t.Fatalf("unexpected buildings: %v", route.Buildings)
	}
	wantInstructions := []string{
		"Exit the Main Building through the east exit",
		"Walk straight across the courtyard",
		"Enter the Science Building through the main entrance",
		"Find Room 205",
	}
	if len(route.Steps) != len(wantInstructions) {
		t.Fatalf("expected %d steps, got %d", len(wantInstructions), len(route.Steps))
	}
	for i, want := range wantInstructions {
		if route.Steps[i].Instruction != want {
			t.Errorf("step %d = %q, want %q", i, route.Steps[i].Instruction, want)
		}
	}
	// 4 steps * 2 min + 3 min between buildings.
	if route.EstimatedTime != "11 min" {
		t.Errorf("EstimatedTime = %q, want %q", route.EstimatedTime, "11 min")
	}
	if route.Distance != "~200-500 meters between buildings" {
		t.Errorf("Distance = %q, want %q", route.Distance, "~200-500 meters between buildings")
	}
}

func TestService_Plan_CuratedReverse(t *testing.T) {
	s := NewService()
	route := s.Plan("Room 201", "Main entrance")

	if route.Steps[0].Instruction != "Exit the Science Building through the main entrance" {
		t.Errorf("expected curated Science->Main script, got %q", route.Steps[0].Instruction)
	}
}

// North->Main has no curated script; only the four directed pairs do.
func TestService_Plan_AsymmetricFallsBackToGeneric(t *testing.T) {
	s := NewService()
	route := s.Plan("N-101", "Main entrance")

	wantInstructions := []string{
		"Exit the North Building",
		"Walk to the Main Building",
		"Enter the Main Building",
		"Locate your destination: Main entrance",
	}
	if len(route.Steps) != len(wantInstructions) {
		t.Fatalf("expected %d steps, got %d", len(wantInstructions), len(route.Steps))
	}
	for i, want := range wantInstructions {
		if route.Steps[i].Instruction != want {
			t.Errorf("step %d = %q, want %q", i, route.Steps[i].Instruction, want)
		}
	}
}

func TestService_Plan_DestinationWithoutRoom(t *testing.T) {
	s := NewService()
	route := s.Plan("Room 150", "the Library")

	if route.Buildings != [2]string{BuildingMain, BuildingLibrary} {
		t.Fatalf("unexpected buildings: %v", route.Buildings)
	}
	last := route.Steps[len(route.Steps)-1]
	if last.Instruction != "Locate your destination: the Library" {
		t.Errorf("unexpected final step: %q", last.Instruction)
	}
}

func TestService_Plan_Deterministic(t *testing.T) {
	s := NewService()
	a := s.Plan("cafeteria", "Room N-210")
	b := s.Plan("cafeteria", "Room N-210")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Plan is not deterministic:\n%+v\n%+v", a, b)
	}
}
