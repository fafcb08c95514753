package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/usecases"
)

// ChangeChillerSchedule applies a schedule change confirmed by the operator in the UI.
func (api ChillerPlantServer) ChangeChillerSchedule(w http.ResponseWriter, r *http.Request) {
	req := ScheduleChangeReq{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ScheduleChangeResp{Message: "invalid request body"})
		return
	}

	changed, err := api.ChangeChillerScheduleUseCase.Execute(r.Context(), usecases.ChillerScheduleChange{
		ChillerID:   req.ChillerID,
		ProfileType: req.ProfileType,
		OldSchedule: toScheduleEntries(req.OldSchedule),
		NewSchedule: toScheduleEntries(req.NewSchedule),
	})
	if err != nil {
		status, errResp := toError(err)
		message := errResp.Error.Message
		if status == http.StatusInternalServerError {
			api.Logger.Error().Err(err).Str("chiller_id", req.ChillerID).Msg("ChangeChillerSchedule: unexpected error")
			message = "An unexpected error occurred"
		}
		respondJSON(w, status, ScheduleChangeResp{Message: message})
		return
	}

	respondJSON(w, http.StatusOK, ScheduleChangeResp{
		Success: true,
		Message: changed.Message,
		Data: &ScheduleChangeData{
			ChillerID:   changed.ChillerID,
			NewSchedule: toScheduleTimes(changed.NewSchedule),
		},
	})
}

// SetDeviceMaintenanceFlag opens or closes maintenance tickets for the requested devices.
func (api ChillerPlantServer) SetDeviceMaintenanceFlag(w http.ResponseWriter, r *http.Request) {
	req := MaintenanceFlagReq{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, newErrorResp(ErrorCode_BadRequest, "invalid request body"))
		return
	}

	err := api.SetMaintenanceFlagUseCase.Execute(r.Context(), usecases.MaintenanceFlagChange{
		DeviceIDs:      req.DeviceID,
		Flag:           req.MaintenanceFlag,
		ReporterName:   req.ReporterName,
		TechnicianName: req.TechnicianName,
		Time:           req.Time,
		Reason:         req.Reason,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	action := "cleared"
	if req.MaintenanceFlag {
		action = "set"
	}
	respondJSON(w, http.StatusOK, MaintenanceFlagResp{
		Success: true,
		Message: fmt.Sprintf("Maintenance flag %s for %d device(s)", action, len(req.DeviceID)),
		Devices: req.DeviceID,
	})
}
