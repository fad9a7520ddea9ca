package main

import (
	"fmt"
	"math/rand"

	"imfapi/models"
)

// successProbabilityBands maps a gadget status to its [min, max] mission
// success percentage. Cosmetic flavor only, recomputed on every list.
var successProbabilityBands = map[string][2]int{
	models.StatusAvailable:      {70, 90},
	models.StatusDeployed:       {50, 80},
	models.StatusDecommissioned: {10, 30},
	models.StatusDestroyed:      {0, 10},
}

func missionSuccessProbability(status string) string {
	band, ok := successProbabilityBands[status]
	if !ok {
		return "0%"
	}
	return fmt.Sprintf("%d%%", band[0]+rand.Intn(band[1]-band[0]+1))
}
