package leavetype

type LeaveTypeResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type LeaveTypesResponse struct {
	LeaveTypes []LeaveTypeResponse `json:"leave_types"`
}
