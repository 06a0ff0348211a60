package models

// Company is a synthetic company record stored in Firestore.
// The document ID is generated separately and is not part of the body.
type Company struct {
	Name      string `firestore:"name" json:"name"`
	Industry  string `firestore:"industry" json:"industry"`
	Address1  string `firestore:"address1" json:"address1"`
	Address2  string `firestore:"address2" json:"address2"`
	City      string `firestore:"city" json:"city"`
	Zip       string `firestore:"zip" json:"zip"`
	Employees int    `firestore:"employees" json:"employees"`
}

// MaxEmployees is the upper bound (inclusive) of Company.Employees.
const MaxEmployees = 25000

// CompanySummary is the id/name projection returned when listing companies.
type CompanySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
