package inbound

type SendPacketRequest struct {
	Host    string `json:"host"`
	Message string `json:"message"`
}

type SendPacketResponse struct {
	Success bool `json:"success"`
	Port    int  `json:"port"`
}
