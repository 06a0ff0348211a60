package models

// These structs define the JSON payloads carried inside the callable
// envelope ({"data": ...} in, {"result": ...} out).

// CreateCompaniesResponse is the output of the createCompanies function.
type CreateCompaniesResponse struct {
	Data string `json:"data"`
}

// CreateCompaniesSucceeded is the fixed status returned after a full batch.
const CreateCompaniesSucceeded = "successful!"

// GetCompanyRequest is the input for the getCompany function.
type GetCompanyRequest struct {
	ID string `json:"id"`
}

// EmptyResult is returned in place of a list or record when nothing matched.
// It marshals to {"data": {}}.
type EmptyResult struct {
	Data struct{} `json:"data"`
}
