package storage

type Worker struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Position string `json:"position"`
}

type SaveWorker struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Position string `json:"position"`
}
