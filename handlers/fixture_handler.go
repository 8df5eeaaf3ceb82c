package handlers

import (
	"net/http"

	"github.com/Mutisya7/fixture-system/services"
)

type FixtureHandler struct {
	fixtureService services.FixtureService
}

func NewFixtureHandler(fixtureService services.FixtureService) *FixtureHandler {
	return &FixtureHandler{fixtureService: fixtureService}
}

// GenerateFixturesHandler runs the scheduling engine for a tournament and
// replaces its stored schedule. Conflicts come back alongside the fixtures;
// only an invalid configuration is treated as failure.
func (h *FixtureHandler) GenerateFixturesHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.fixtureService.Generate(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{
		"fixtures":  result.Fixtures,
		"conflicts": result.Conflicts,
		"groups":    result.Groups,
	}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *FixtureHandler) ListFixturesHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.fixtureService.ListFixtures(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"fixtures": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *FixtureHandler) ListConflictsHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conflicts, err := h.fixtureService.ListConflicts(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"conflicts": conflicts}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
