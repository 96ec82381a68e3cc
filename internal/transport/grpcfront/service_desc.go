package grpcfront

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "beausejour.reservation.v1.ReservationService"

// RegisterReservationServer registers the reservation service on a gRPC
// server. The service descriptor is assembled by hand because the wire format
// is the JSON codec, not protobuf.
func RegisterReservationServer(s *grpc.Server, srv *ReservationServer) {
	s.RegisterService(&reservationServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](method func(*ReservationServer, context.Context, *Req) (*Resp, error), fullMethod string) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(srv.(*ReservationServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return method(srv.(*ReservationServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var reservationServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReservationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateReservation",
			Handler:    unaryHandler((*ReservationServer).CreateReservation, "/"+ServiceName+"/CreateReservation"),
		},
		{
			MethodName: "GetReservation",
			Handler:    unaryHandler((*ReservationServer).GetReservation, "/"+ServiceName+"/GetReservation"),
		},
		{
			MethodName: "AmendReservation",
			Handler:    unaryHandler((*ReservationServer).AmendReservation, "/"+ServiceName+"/AmendReservation"),
		},
		{
			MethodName: "ChangeStatus",
			Handler:    unaryHandler((*ReservationServer).ChangeStatus, "/"+ServiceName+"/ChangeStatus"),
		},
		{
			MethodName: "CancelReservation",
			Handler:    unaryHandler((*ReservationServer).CancelReservation, "/"+ServiceName+"/CancelReservation"),
		},
		{
			MethodName: "CheckAvailability",
			Handler:    unaryHandler((*ReservationServer).CheckAvailability, "/"+ServiceName+"/CheckAvailability"),
		},
		{
			MethodName: "ListForClient",
			Handler:    unaryHandler((*ReservationServer).ListForClient, "/"+ServiceName+"/ListForClient"),
		},
		{
			MethodName: "ListForRoom",
			Handler:    unaryHandler((*ReservationServer).ListForRoom, "/"+ServiceName+"/ListForRoom"),
		},
		{
			MethodName: "ListByStatus",
			Handler:    unaryHandler((*ReservationServer).ListByStatus, "/"+ServiceName+"/ListByStatus"),
		},
		{
			MethodName: "ListCurrentAndUpcoming",
			Handler:    unaryHandler((*ReservationServer).ListCurrentAndUpcoming, "/"+ServiceName+"/ListCurrentAndUpcoming"),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reservation_service.json",
}
