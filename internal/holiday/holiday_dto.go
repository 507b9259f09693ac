package holiday

type HolidayResponse struct {
	ID          string `json:"hrholidayId"`
	Name        string `json:"holidayName"`
	Date        string `json:"holidayDate"`
	HolidayType string `json:"holidayType,omitempty"`
	CenterID    *int   `json:"centerId,omitempty"`
	StateID     *int   `json:"stateId,omitempty"`
}
