package models

// Proficiency levels offered by the profile form.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// User is the signed-in person and their profile. Stored under a single key;
// removed on logout.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`

	Profile

	// ProfileComplete stays false until profile setup succeeds.
	ProfileComplete bool `json:"profileComplete"`
}

// Profile holds the fields collected by profile setup and editable later.
type Profile struct {
	ISLName           string `json:"islName,omitempty" validate:"notblank,max=64"`
	Age               int    `json:"age,omitempty" validate:"omitempty,gte=1,lte=120"`
	Location          string `json:"location,omitempty" validate:"max=128"`
	Occupation        string `json:"occupation,omitempty" validate:"max=128"`
	ISLLevel          string `json:"islLevel,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Bio               string `json:"bio,omitempty" validate:"max=500"`
	PreferredLanguage string `json:"preferredLanguage,omitempty" validate:"omitempty,oneof=english hindi tamil telugu bengali marathi"`
}

// DisplayName prefers the ISL name, then the account name.
func (u *User) DisplayName() string {
	switch {
	case u == nil:
		return "Welcome"
	case u.ISLName != "":
		return u.ISLName
	case u.Name != "":
		return u.Name
	default:
		return "Welcome"
	}
}
