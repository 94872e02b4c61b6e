package catalog

import "time"

// DeletedProduct is an archived catalog entry. Deleting a product moves it
// into the deletion log with the removal timestamp recorded twice: once as a
// clock time and once as a calendar date, matching the persisted schema.
type DeletedProduct struct {
	Product
	DeletedTime string `json:"deletedTime"`
	DeletedDate string `json:"deletedDate"`
}

// NewDeletedProduct archives a product at the given instant
func NewDeletedProduct(p Product, at time.Time) DeletedProduct {
	return DeletedProduct{
		Product:     p,
		DeletedTime: at.Format("15:04:05"),
		DeletedDate: at.Format("2006-01-02"),
	}
}

// FilterDeleted returns the archive entries matching the filter,
// preserving order
func FilterDeleted(deleted []DeletedProduct, f Filter) []DeletedProduct {
	result := make([]DeletedProduct, 0, len(deleted))
	for _, d := range deleted {
		if d.Matches(f) {
			result = append(result, d)
		}
	}
	return result
}
