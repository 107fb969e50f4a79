package models

import "time"

// Recipe source values accepted on the wire.
const (
	SourceAIGenerated = "ai-generated"
	SourceManual      = "manual"
)

// Recipe is a stored recipe document. One Firestore document per recipe,
// keyed by ID.
type Recipe struct {
	ID                  string              `firestore:"id"`
	OwnerUID            string              `firestore:"ownerUid"`
	Title               string              `firestore:"name"`
	Description         string              `firestore:"description"`
	Ingredients         []string            `firestore:"ingredients"`
	Instructions        []string            `firestore:"instructions"`
	PrepMinutes         int                 `firestore:"prepMinutes"`
	CookMinutes         int                 `firestore:"cookMinutes"`
	Servings            int                 `firestore:"servings"`
	Nutrition           map[string]float64  `firestore:"nutrition"`
	Tips                map[string][]string `firestore:"tips"`
	ImageURL            string              `firestore:"imageUrl"`
	Source              string              `firestore:"source"`
	Tags                []string            `firestore:"tags"`
	DietaryRestrictions []string            `firestore:"dietaryRestrictions"`
	IsPublic            bool                `firestore:"isPublic"`
	CreatedAt           time.Time           `firestore:"createdAt"`
	UpdatedAt           time.Time           `firestore:"updatedAt"`
}

// TotalMinutes returns prep+cook when both are set, 0 otherwise.
func (r *Recipe) TotalMinutes() int {
	if r.PrepMinutes > 0 && r.CookMinutes > 0 {
		return r.PrepMinutes + r.CookMinutes
	}
	return 0
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	c := *r
	c.Ingredients = append([]string(nil), r.Ingredients...)
	c.Instructions = append([]string(nil), r.Instructions...)
	c.Tags = append([]string(nil), r.Tags...)
	c.DietaryRestrictions = append([]string(nil), r.DietaryRestrictions...)
	if r.Nutrition != nil {
		c.Nutrition = make(map[string]float64, len(r.Nutrition))
		for k, v := range r.Nutrition {
			c.Nutrition[k] = v
		}
	}
	if r.Tips != nil {
		c.Tips = make(map[string][]string, len(r.Tips))
		for k, v := range r.Tips {
			c.Tips[k] = append([]string(nil), v...)
		}
	}
	return &c
}
