// Package soapfront exposes the reservation operations as a SOAP 1.1
// endpoint. Requests are dispatched on the name of the body payload element,
// and domain errors surface as SOAP faults carrying the shared error kind.
package soapfront

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Beausejour-Hotels/service-reservation/internal/application"
	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
	"github.com/Beausejour-Hotels/service-reservation/internal/response"
)

const maxRequestBytes = 1 << 20

// Handler is the SOAP endpoint. It implements http.Handler so it can be
// mounted on the main router.
type Handler struct {
	service *application.ReservationService
	logger  *zap.Logger
}

// NewHandler creates a new SOAP Handler.
func NewHandler(service *application.ReservationService, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// ServeHTTP handles POST requests carrying a SOAP envelope.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		h.writeFault(w, "soap:Client", "failed to read request body", "bad_request")
		return
	}

	var env requestEnvelope
	if err := xml.Unmarshal(body, &env); err != nil {
		h.writeFault(w, "soap:Client", "malformed SOAP envelope", "bad_request")
		return
	}

	payload := env.Body.Payload
	result, err := h.dispatch(r, payload)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeEnvelope(w, http.StatusOK, newResponseEnvelope(result))
}

func (h *Handler) dispatch(r *http.Request, payload rawPayload) (interface{}, error) {
	ctx := r.Context()

	switch payload.XMLName.Local {
	case "CreateReservationRequest":
		var req createReservationRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return nil, err
		}
		return h.createReservation(ctx, req)

	case "GetReservationRequest":
		var req getReservationRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return nil, err
		}
		id, err := parseID(req.ReservationID, "reservationId")
		if err != nil {
			return nil, err
		}
		dto, err := h.service.GetReservation(ctx, id)
		if err != nil {
			return nil, err
		}
		return singleResponse(dto), nil

	case "AmendReservationRequest":
		var req amendReservationRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return nil, err
		}
		return h.amendReservation(ctx, req)

	case "ChangeStatusRequest":
		var req changeStatusRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return nil, err
		}
		id, err := parseID(req.ReservationID, "reservationId")
		if err != nil {
			return nil, err
		}
		dto, err := h.service.ChangeStatus(ctx, id, req.Status)
		if err != nil {
			return nil, err
		}
		return singleResponse(dto), nil

	case "CancelReservationRequest":
		var req cancelReservationRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return nil, err
		}
		id, err := parseID(req.ReservationID, "reservationId")
		if err != nil {
			return nil, err
		}
		dto, err := h.service.CancelReservation(ctx, id, req.Reason)
		if err != nil {
			return nil, err
		}
		return singleResponse(dto), nil

	case "CheckAvailabilityRequest":
		var req checkAvailabilityRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return nil, err
		}
		roomID, err := parseID(req.RoomID, "roomId")
		if err != nil {
			return nil, err
		}
		available, err := h.service.CheckAvailability(ctx, roomID, req.StartDate, req.EndDate)
		if err != nil {
			return nil, err
		}
		return availabilityResponse{
			NS:        ServiceNS,
			RoomID:    req.RoomID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Available: available,
		}, nil

	case "ListForClientRequest":
		var req listForClientRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return nil, err
		}
		clientID, err := parseID(req.ClientID, "clientId")
		if err != nil {
			return nil, err
		}
		list, err := h.service.ListForClient(ctx, clientID)
		if err != nil {
			return nil, err
		}
		return listResponse(list), nil

	case "ListForRoomRequest":
		var req listForRoomRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return nil, err
		}
		roomID, err := parseID(req.RoomID, "roomId")
		if err != nil {
			return nil, err
		}
		list, err := h.service.ListForRoom(ctx, roomID)
		if err != nil {
			return nil, err
		}
		return listResponse(list), nil

	case "ListByStatusRequest":
		var req listByStatusRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return nil, err
		}
		list, err := h.service.ListByStatus(ctx, req.Status)
		if err != nil {
			return nil, err
		}
		return listResponse(list), nil

	case "ListCurrentAndUpcomingRequest":
		list, err := h.service.ListCurrentAndUpcoming(ctx)
		if err != nil {
			return nil, err
		}
		return listResponse(list), nil

	default:
		return nil, domain.NewValidationError("unknown operation: " + payload.XMLName.Local)
	}
}

func (h *Handler) createReservation(ctx context.Context, req createReservationRequest) (interface{}, error) {
	clientID, err := parseID(req.ClientID, "clientId")
	if err != nil {
		return nil, err
	}
	roomID, err := parseID(req.RoomID, "roomId")
	if err != nil {
		return nil, err
	}

	dto, err := h.service.CreateReservation(ctx, application.CreateReservationRequest{
		ClientID:    clientID,
		RoomID:      roomID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PartySize:   req.PartySize,
		Preferences: req.Preferences,
		Comments:    req.Comments,
	})
	if err != nil {
		return nil, err
	}
	return singleResponse(dto), nil
}

func (h *Handler) amendReservation(ctx context.Context, req amendReservationRequest) (interface{}, error) {
	id, err := parseID(req.ReservationID, "reservationId")
	if err != nil {
		return nil, err
	}

	appReq := application.AmendReservationRequest{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PartySize:   req.PartySize,
		Preferences: req.Preferences,
		Comments:    req.Comments,
	}
	if req.ClientID != nil {
		clientID, err := parseID(*req.ClientID, "clientId")
		if err != nil {
			return nil, err
		}
		appReq.ClientID = &clientID
	}
	if req.RoomID != nil {
		roomID, err := parseID(*req.RoomID, "roomId")
		if err != nil {
			return nil, err
		}
		appReq.RoomID = &roomID
	}

	dto, err := h.service.AmendReservation(ctx, id, appReq)
	if err != nil {
		return nil, err
	}
	return singleResponse(dto), nil
}

func unmarshalPayload(payload rawPayload, v interface{}) error {
	wrapped := "<" + payload.XMLName.Local + ">" + string(payload.Inner) + "</" + payload.XMLName.Local + ">"
	if err := xml.Unmarshal([]byte(wrapped), v); err != nil {
		return domain.NewValidationError("malformed " + payload.XMLName.Local)
	}
	return nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("invalid " + field)
	}
	return id, nil
}

func singleResponse(dto *application.ReservationDTO) reservationResponse {
	return reservationResponse{NS: ServiceNS, Reservation: toReservationInfo(dto)}
}

func listResponse(dtos []application.ReservationDTO) reservationListResponse {
	return reservationListResponse{NS: ServiceNS, Reservations: toReservationInfos(dtos)}
}

// writeError translates a domain error into a SOAP fault. Client-side errors
// (4xx in the REST taxonomy) become soap:Client faults, everything else
// soap:Server.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	httpStatus, kind := response.Classify(err)

	message := err.Error()
	faultCode := "soap:Client"
	if httpStatus >= http.StatusInternalServerError {
		faultCode = "soap:Server"
		message = "internal server error"
	}

	h.writeFault(w, faultCode, message, kind)
}

// writeFault emits a SOAP 1.1 fault. Faults ride on HTTP 500 regardless of
// the REST-side status; the kind in the detail carries the distinction.
func (h *Handler) writeFault(w http.ResponseWriter, code, message, kind string) {
	h.writeEnvelope(w, http.StatusInternalServerError, newFaultEnvelope(code, message, kind))
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, status int, env responseEnvelope) {
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(status)

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		h.logger.Error("failed to write soap response", zap.Error(err))
		return
	}
	if err := xml.NewEncoder(w).Encode(env); err != nil {
		h.logger.Error("failed to encode soap response", zap.Error(err))
	}
}
