package models

const (
	UsesProductYes       = "yes"
	UsesProductWantToUse = "want_to_use"
)

// OnboardingRecord captures the post-approval device details. DateAnchor
// strings use the yyyy-MM-dd wire format throughout.
type OnboardingRecord struct {
	BaseUUIDModel
	UserID         string  `gorm:"type:varchar(64);not null;uniqueIndex" json:"userId"`
	UsesProduct    string  `gorm:"type:varchar(20);not null"             json:"usesProduct"`
	SurgeryDate    *string `gorm:"type:varchar(10)"                      json:"surgeryDate,omitempty"`
	ActivationDate string  `gorm:"type:varchar(10);not null"             json:"activationDate"`
}

type BeneficiaryProfile struct {
	BaseUUIDModel
	UserID string `gorm:"type:varchar(64);not null;uniqueIndex" json:"userId"`

	InsuredFirstName string `gorm:"type:varchar(100);not null" json:"insuredFirstName"`
	InsuredLastName  string `gorm:"type:varchar(100);not null" json:"insuredLastName"`

	BeneficiaryFirstName  string  `gorm:"type:varchar(100);not null" json:"beneficiaryFirstName"`
	BeneficiaryMiddleName *string `gorm:"type:varchar(100)"          json:"beneficiaryMiddleName,omitempty"`
	BeneficiaryLastName   string  `gorm:"type:varchar(100);not null" json:"beneficiaryLastName"`
	BeneficiarySuffix     *string `gorm:"type:varchar(20)"           json:"beneficiarySuffix,omitempty"`

	BeneficiaryDob    string `gorm:"type:varchar(10);not null"  json:"beneficiaryDob"`
	BeneficiaryGender string `gorm:"type:varchar(10);not null"  json:"beneficiaryGender"`

	AddressStreet  string  `gorm:"type:varchar(255);not null" json:"addressStreet"`
	AddressLine2   *string `gorm:"type:varchar(255)"          json:"addressLine2,omitempty"`
	AddressCity    string  `gorm:"type:varchar(100);not null" json:"addressCity"`
	AddressState   string  `gorm:"type:varchar(100);not null" json:"addressState"`
	AddressZip     string  `gorm:"type:varchar(20);not null"  json:"addressZip"`
	AddressCountry string  `gorm:"type:varchar(100);not null" json:"addressCountry"`

	RelationshipToInsured string `gorm:"type:varchar(50);not null"  json:"relationshipToInsured"`
	// Percentage as a string, "0".."100". TotalAllocation mirrors Allocation
	// while only a single beneficiary is supported.
	Allocation      string `gorm:"type:varchar(3);not null"   json:"allocation"`
	TotalAllocation string `gorm:"type:varchar(3)"            json:"totalAllocation"`
}

var Genders = []string{"male", "female"}

var Relationships = []string{"Child", "Spouse", "Parent", "Sibling", "Other"}
