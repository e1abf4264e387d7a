// README: Navigation service plans deterministic campus routes.
package navigation

import "fmt"

// Service plans routes between campus buildings. It holds no state and makes
// no external calls; Plan is safe for concurrent use.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Plan resolves both location strings to buildings, synthesizes the step list
// and estimates time and distance. Same inputs always produce the same route.
func (s *Service) Plan(currentLocation, destination string) Route {
	from := Resolve(currentLocation)
	to := Resolve(destination)

	steps := synthesizeSteps(from.Building, to.Building, destination)

	sameBuilding := from.Building == to.Building
	minutes := len(steps) * 2
	if !sameBuilding {
		minutes += 3
	}

	distance := "~200-500 meters between buildings"
	if sameBuilding {
		distance = "Same building"
	}

	return Route{
		Steps:         steps,
		EstimatedTime: fmt.Sprintf("%d min", minutes),
		Distance:      distance,
		Buildings:     [2]string{from.Building, to.Building},
	}
}
