package models

// Workspace is one entry of the i3 GET_WORKSPACES reply.
type Workspace struct {
	Num     int    `json:"num"` // 1-based, -1 for named workspaces
	Name    string `json:"name"`
	Output  string `json:"output"`
	Visible bool   `json:"visible"`
	Focused bool   `json:"focused"`
	Urgent  bool   `json:"urgent"`
}
