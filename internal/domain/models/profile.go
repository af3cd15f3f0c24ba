package models

// CompanyProfile holds descriptive company information for one symbol.
type CompanyProfile struct {
	Symbol   string
	Name     string
	Summary  string
	Industry string
	Sector   string
	Website  string
	Officers []Officer
}

// Officer is one entry of a company's leadership listing.
type Officer struct {
	Name     string
	Title    string
	Age      int
	YearBorn int
}
