package rent

type CreateRentReq struct {
	AnnouncementID string `json:"announcementId" validate:"required"`
	StartDate      string `json:"startDate" validate:"required"`
	EndDate        string `json:"endDate"`
}
