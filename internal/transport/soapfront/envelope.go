package soapfront

import "encoding/xml"

// SOAP 1.1 envelope namespace.
const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

// ServiceNS is the namespace of the reservation service payloads.
const ServiceNS = "http://beausejour-hotels.com/reservation/v1"

// requestEnvelope captures an incoming SOAP request. The body payload is kept
// raw so the dispatcher can branch on the element name before decoding.
type requestEnvelope struct {
	XMLName xml.Name    `xml:"Envelope"`
	Body    requestBody `xml:"Body"`
}

type requestBody struct {
	Payload rawPayload `xml:",any"`
}

// rawPayload retains the element name and inner XML of the body payload.
type rawPayload struct {
	XMLName xml.Name
	Inner   []byte `xml:",innerxml"`
}

// responseEnvelope is the outgoing SOAP envelope.
type responseEnvelope struct {
	XMLName xml.Name     `xml:"soap:Envelope"`
	SoapNS  string       `xml:"xmlns:soap,attr"`
	Body    responseBody `xml:"soap:Body"`
}

type responseBody struct {
	Payload interface{} `xml:",omitempty"`
	Fault   *soapFault  `xml:",omitempty"`
}

// soapFault is the SOAP 1.1 fault element. The machine-readable error kind is
// carried in the detail so callers see the same taxonomy as the other
// front-ends.
type soapFault struct {
	XMLName     xml.Name   `xml:"soap:Fault"`
	FaultCode   string     `xml:"faultcode"`
	FaultString string     `xml:"faultstring"`
	Detail      *faultInfo `xml:"detail>errorInfo,omitempty"`
}

type faultInfo struct {
	Kind string `xml:"kind"`
}

func newResponseEnvelope(payload interface{}) responseEnvelope {
	return responseEnvelope{
		SoapNS: envelopeNS,
		Body:   responseBody{Payload: payload},
	}
}

func newFaultEnvelope(code, message, kind string) responseEnvelope {
	return responseEnvelope{
		SoapNS: envelopeNS,
		Body: responseBody{
			Fault: &soapFault{
				FaultCode:   code,
				FaultString: message,
				Detail:      &faultInfo{Kind: kind},
			},
		},
	}
}
