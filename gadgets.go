package main

import (
	"errors"
	"time"

	"imfapi/models"

	"gorm.io/gorm"
)

const defaultGadgetDescription = "No description provided"

// createGadget persists a new gadget with a generated codename. Status
// defaults to AVAILABLE.
func createGadget(name, description, status string) (*models.Gadget, error) {
	if description == "" {
		description = defaultGadgetDescription
	}
	if status == "" {
		status = models.StatusAvailable
	}
	if !models.ValidGadgetStatus(status) {
		return nil, validationError("invalid gadget status")
	}
	gadget := models.Gadget{
		Name:        name,
		Codename:    generateCodename(),
		Description: description,
		Status:      status,
	}
	if err := db.Create(&gadget).Error; err != nil {
		return nil, internalError("Gadget Creation Failed")
	}
	return &gadget, nil
}

// visibleStatuses resolves the status filter for a caller. Non-admins are
// pinned to AVAILABLE/DEPLOYED regardless of what they ask for; an
// out-of-set request falls back to both. Admins may filter by any status,
// and an invalid value is ignored (nil filter = everything).
func visibleStatuses(role, status string) []string {
	if role != models.RoleAdmin {
		if status == models.StatusAvailable || status == models.StatusDeployed {
			return []string{status}
		}
		return []string{models.StatusAvailable, models.StatusDeployed}
	}
	if models.ValidGadgetStatus(status) {
		return []string{status}
	}
	return nil
}

// clampPositive coerces a pagination parameter to an integer >= 1.
func clampPositive(n, fallback int) int {
	if n < 1 {
		return fallback
	}
	return n
}

// listGadgets returns a page of gadgets ordered by creation time descending,
// each annotated with a fresh mission success probability. Admin callers also
// get the total count of matching records; everyone else gets -1.
func listGadgets(page, limit int, status, role string) ([]models.Gadget, int64, error) {
	page = clampPositive(page, 1)
	limit = clampPositive(limit, 1)

	var totalRecords int64
	if err := db.Model(&models.Gadget{}).Count(&totalRecords).Error; err != nil {
		return nil, 0, internalError("Failed to retrieve gadgets")
	}
	// An offset past the last record degrades to the full set from offset 0
	// instead of an empty page, so stale page numbers still return data.
	offset := (page - 1) * limit
	if int64(offset) >= totalRecords {
		offset = 0
		if totalRecords > 0 {
			limit = int(totalRecords)
		}
	}

	q := db.Model(&models.Gadget{})
	statuses := visibleStatuses(role, status)
	if statuses != nil {
		q = q.Where("status IN ?", statuses)
	}

	// Non-nil so an empty result serializes as [] rather than null.
	gadgets := []models.Gadget{}
	if err := q.Order("created_at desc").Offset(offset).Limit(limit).Find(&gadgets).Error; err != nil {
		return nil, 0, internalError("Failed to retrieve gadgets")
	}
	for i := range gadgets {
		gadgets[i].MissionSuccessProbability = missionSuccessProbability(gadgets[i].Status)
	}

	total := int64(-1)
	if role == models.RoleAdmin {
		cq := db.Model(&models.Gadget{})
		if statuses != nil {
			cq = cq.Where("status IN ?", statuses)
		}
		if err := cq.Count(&total).Error; err != nil {
			return nil, 0, internalError("Failed to retrieve gadgets")
		}
	}
	return gadgets, total, nil
}

func findGadget(id string) (*models.Gadget, error) {
	var gadget models.Gadget
	if err := db.First(&gadget, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("Gadget not found")
		}
		return nil, internalError("failed to look up gadget")
	}
	return &gadget, nil
}

// updateGadget applies the provided fields to an existing gadget.
func updateGadget(id string, updates map[string]interface{}) (*models.Gadget, error) {
	gadget, err := findGadget(id)
	if err != nil {
		return nil, err
	}
	if err := db.Model(gadget).Updates(updates).Error; err != nil {
		return nil, internalError("Failed to update gadget")
	}
	return gadget, nil
}

// decommissionGadget soft-deletes: forces DECOMMISSIONED and stamps the time.
func decommissionGadget(id string) (*models.Gadget, error) {
	gadget, err := findGadget(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	updates := map[string]interface{}{
		"status":            models.StatusDecommissioned,
		"decommissioned_at": &now,
	}
	if err := db.Model(gadget).Updates(updates).Error; err != nil {
		return nil, internalError("Failed to delete gadget")
	}
	return gadget, nil
}

// initiateSelfDestruct generates a confirmation code for the gadget and
// stashes it for confirmationCodeTTL. The code is returned in the response, a
// deliberate simplification: there is no out-of-band delivery channel.
func initiateSelfDestruct(id string) (string, error) {
	if _, err := findGadget(id); err != nil {
		return "", err
	}
	code, err := generateConfirmationCode()
	if err != nil {
		return "", err
	}
	stashConfirmationCode(id, code)
	return code, nil
}

// destroyGadget confirms a pending self-destruct. The stored code is
// single-use: it is consumed on a successful match before the status flip.
// The row is retained with status DESTROYED rather than deleted.
func destroyGadget(id, submittedCode string) (*models.Gadget, error) {
	stored, ok := lookupConfirmationCode(id)
	if !ok {
		return nil, authenticationError("Confirmation code has expired or not found")
	}
	if stored != submittedCode {
		return nil, authenticationError("Incorrect Confirmation Code")
	}
	consumeConfirmationCode(id)
	gadget, err := findGadget(id)
	if err != nil {
		return nil, err
	}
	if err := db.Model(gadget).Update("status", models.StatusDestroyed).Error; err != nil {
		return nil, internalError("Failed to destroy gadget")
	}
	return gadget, nil
}
