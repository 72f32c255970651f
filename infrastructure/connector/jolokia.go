package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

// JolokiaHandler forwards JMX operations of one MBean to a Jolokia agent
type JolokiaHandler struct {
	client     *http.Client
	endpoint   string
	objectName string
	user       string
	password   string
}

var _ interfaces.CallHandler = (*JolokiaHandler)(nil)

// JolokiaError is an error reported by the agent
type JolokiaError struct {
	Status  int
	Type    string
	Message string
}

func (e *JolokiaError) Error() string {
	return fmt.Sprintf("jolokia status %d: %s: %s", e.Status, e.Type, e.Message)
}

type jolokiaRequest struct {
	Type      entities.RemoteOperationKind `json:"type"`
	MBean     string                       `json:"mbean"`
	Operation string                       `json:"operation,omitempty"`
	Attribute string                       `json:"attribute,omitempty"`
	Arguments []any                        `json:"arguments,omitempty"`
	Value     *any                         `json:"value,omitempty"`
}

type jolokiaResponse struct {
	Status    int             `json:"status"`
	Value     json.RawMessage `json:"value"`
	Error     string          `json:"error"`
	ErrorType string          `json:"error_type"`
}

// NewJolokiaHandler creates a handler for objectName on host
func NewJolokiaHandler(client *http.Client, host entities.JmxHost, objectName string) *JolokiaHandler {
	if client == nil {
		client = http.DefaultClient
	}
	return &JolokiaHandler{
		client:     client,
		endpoint:   JolokiaEndpoint(host.Address),
		objectName: objectName,
		user:       host.User,
		password:   host.Password,
	}
}

// JolokiaEndpoint turns a JMX address into the agent URL. A bare
// ":port" means localhost.
func JolokiaEndpoint(address string) string {
	if strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return strings.TrimSuffix(address, "/") + "/"
	}
	if strings.HasPrefix(address, ":") {
		address = "localhost" + address
	}
	return "http://" + address + "/jolokia/"
}

// Invoke sends one request and returns the value of the response
func (h *JolokiaHandler) Invoke(ctx context.Context, op entities.RemoteOperation) (json.RawMessage, error) {
	req := jolokiaRequest{Type: op.Kind, MBean: h.objectName}
	switch op.Kind {
	case entities.RemoteExec:
		req.Operation = op.Name
		req.Arguments = op.Args
	case entities.RemoteRead:
		req.Attribute = op.Name
	case entities.RemoteWrite:
		req.Attribute = op.Name
		if len(op.Args) != 1 {
			return nil, fmt.Errorf("attribute write %s takes one value, got %d", op.Name, len(op.Args))
		}
		req.Value = &op.Args[0]
	default:
		return nil, fmt.Errorf("unknown JMX operation kind %q", op.Kind)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JMX request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create JMX request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if h.user != "" {
		httpReq.SetBasicAuth(h.user, h.password)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", op.Name, h.objectName, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read JMX response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &JolokiaError{Status: resp.StatusCode, Type: "http", Message: strings.TrimSpace(string(data))}
	}

	var out jolokiaResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode JMX response: %w", err)
	}
	if out.Status != http.StatusOK {
		return nil, &JolokiaError{Status: out.Status, Type: out.ErrorType, Message: out.Error}
	}
	return out.Value, nil
}
