package models

// Platform roles, mirrored by the seeded accounts.
const (
	RoleVolunteer      = "volunteer"
	RoleBloodDonor     = "blood-donor"
	RoleOrganDonor     = "organ-donor"
	RoleVolunteerAdmin = "volunteer-org-admin"
	RoleBloodAdmin     = "blood-bank-admin"
	RoleOrganAdmin     = "organ-approval-admin"
	RolePlatformAdmin  = "platform-admin"
)

// Organization types.
const (
	OrgTypeVolunteer     = "volunteer-org"
	OrgTypeBloodBank     = "blood-bank"
	OrgTypeOrganApproval = "organ-approval"
)

// BloodTypes lists the ABO/Rh codes in inventory order.
var BloodTypes = []string{"O+", "O-", "A+", "A-", "B+", "B-", "AB+", "AB-"}
