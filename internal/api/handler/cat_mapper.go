package handler

import "github.com/catatlas/cat-registry/internal/core/domain"

// toCatResponse maps a domain cat to the transport shape. The owner block is
// only rendered on paths that expanded it.
func toCatResponse(cat *domain.Cat) catResponse {
	resp := catResponse{
		ID:        cat.ID,
		CatName:   cat.CatName,
		Weight:    cat.Weight,
		Filename:  cat.Filename,
		Birthdate: cat.Birthdate,
		Location:  locationResponse{Lat: cat.Location.Lat, Lng: cat.Location.Lng},
	}
	if cat.Owner.ID != "" {
		resp.Owner = &ownerResponse{
			ID:       cat.Owner.ID,
			UserName: cat.Owner.UserName,
			Email:    cat.Owner.Email,
		}
	}
	return resp
}

func toCatListResponse(cats []domain.Cat) []catResponse {
	out := make([]catResponse, 0, len(cats))
	for i := range cats {
		out = append(out, toCatResponse(&cats[i]))
	}
	return out
}
