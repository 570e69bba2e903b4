package domain

import "time"

// DriveStatus enumerates placement drive states.
type DriveStatus string

const (
	DriveStatusOpen    DriveStatus = "open"
	DriveStatusOngoing DriveStatus = "ongoing"
	DriveStatusClosed  DriveStatus = "closed"
)

// PlacementDrive is a company recruitment drive open to students.
type PlacementDrive struct {
	ID             string
	CompanyName    string
	Role           string
	Package        string
	Eligibility    string
	Deadline       time.Time
	Status         DriveStatus
	JobDescription *string
}

// PlacedCompany summarizes placement outcomes for one company.
type PlacedCompany struct {
	CompanyName string
	TotalPlaced int
	AvgPackage  string
	Location    string
	Description string
}
