package handlers

import "net/http"

// NGOsList handles GET /ngo/all.
func (a *App) NGOsList(w http.ResponseWriter, r *http.Request) {
	ngos, err := a.NGOs.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]ngoDTO, 0, len(ngos))
	for _, ngo := range ngos {
		items = append(items, ngoDTO{ID: ngo.ID, Name: ngo.Name, Email: ngo.Email, CreatedAt: ngo.CreatedAt})
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "ngos": items})
}
