package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"masquerade/domain/entities"
)

const restTag = "rest"

var placeholder = regexp.MustCompile(`\{[^{}/]*\}`)

// StatusError is a non-2xx REST response
type StatusError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Status, e.Body)
}

// RestAPI authenticates against the default REST host and creates a
// client of T
func RestAPI[T any](ctx context.Context, c *Connectors) (*T, error) {
	return RestAPIAt[T](ctx, c, c.restHost)
}

// RestAPIAt authenticates against host and creates a client of T. Tokens
// are reused from the cache while they are valid.
func RestAPIAt[T any](ctx context.Context, c *Connectors, host entities.RestAPIHost) (*T, error) {
	token, err := c.token(ctx, host)
	if err != nil {
		return nil, err
	}
	return RestAPIWithToken[T](c, host.BaseURL, token.AccessToken)
}

func (c *Connectors) token(ctx context.Context, host entities.RestAPIHost) (entities.AccessToken, error) {
	key := tokenKey(host)
	if c.cache != nil {
		if v, ok := c.cache.Get(key); ok {
			return v.(entities.AccessToken), nil
		}
	}

	token, err := c.tokens(host).Token(ctx, host.User, host.Password, host.GrantType)
	if err != nil {
		c.log.WithError(err).WithField("base_url", host.BaseURL).Error("OAuth token exchange failed")
		return token, err
	}
	c.log.WithField("base_url", host.BaseURL).Debug("obtained OAuth token")

	if c.cache != nil {
		ttl := gocache.DefaultExpiration
		if token.ExpiresIn > 0 {
			if life := time.Duration(token.ExpiresIn) * time.Second; life < c.tokenTTL {
				ttl = life
			}
		}
		c.cache.Set(key, token, ttl)
	}
	return token, nil
}

// tokenKey identifies a token by every field sent in the exchange
func tokenKey(host entities.RestAPIHost) string {
	return strings.Join([]string{host.BaseURL, host.User, host.Password, host.ClientID, host.ClientSecret, host.GrantType}, "\x00")
}

// RestAPIWithToken creates a client of T sending token as bearer. Every
// func field needs a tag `rest:"METHOD path"`; each {} or {name}
// placeholder in path takes one argument in order and one extra trailing
// argument is sent as the JSON body.
func RestAPIWithToken[T any](c *Connectors, baseURL, token string) (*T, error) {
	st := reflect.TypeFor[T]()
	if st.Kind() != reflect.Struct {
		return nil, &entities.ConfigurationError{Contract: st.String(), Reason: "REST contracts must be structs of funcs"}
	}

	bindings, err := planFuncs(st)
	if err != nil {
		return nil, err
	}
	routes := make([]route, len(bindings))
	for i, b := range bindings {
		r, err := parseRoute(st, b)
		if err != nil {
			return nil, err
		}
		routes[i] = r
	}

	v := reflect.New(st)
	for i, b := range bindings {
		r := routes[i]
		v.Elem().Field(b.index).Set(b.makeFunc(func(ctx context.Context, args []any) (json.RawMessage, error) {
			return c.send(ctx, baseURL, token, r, args)
		}))
	}
	return v.Interface().(*T), nil
}

type route struct {
	method  string
	path    string
	params  int
	hasBody bool
}

func parseRoute(st reflect.Type, b binding) (route, error) {
	tag, ok := b.field.Tag.Lookup(restTag)
	if !ok {
		return route{}, signatureError(st, b.field, "missing rest tag")
	}
	method, path, ok := strings.Cut(strings.TrimSpace(tag), " ")
	if !ok || strings.TrimSpace(path) == "" {
		return route{}, signatureError(st, b.field, fmt.Sprintf("rest tag %q must be \"METHOD path\"", tag))
	}

	r := route{method: strings.ToUpper(method), path: strings.TrimSpace(path)}
	r.params = len(placeholder.FindAllStringIndex(r.path, -1))
	switch len(b.args) {
	case r.params:
	case r.params + 1:
		r.hasBody = true
	default:
		return route{}, signatureError(st, b.field, fmt.Sprintf("path %q takes %d arguments plus an optional body, got %d", r.path, r.params, len(b.args)))
	}
	return r, nil
}

func (r route) url(baseURL string, args []any) string {
	i := 0
	path := placeholder.ReplaceAllStringFunc(r.path, func(string) string {
		v := url.PathEscape(fmt.Sprint(args[i]))
		i++
		return v
	})
	return joinURL(baseURL, path)
}

func (c *Connectors) send(ctx context.Context, baseURL, token string, r route, args []any) (json.RawMessage, error) {
	target := r.url(baseURL, args)

	var body io.Reader
	if r.hasBody {
		data, err := json.Marshal(args[r.params])
		if err != nil {
			return nil, fmt.Errorf("failed to encode body of %s %s: %w", r.method, target, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request %s %s: %w", r.method, target, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debugf("REST %s %s", r.method, target)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s %s: %w", r.method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response of %s %s: %w", r.method, target, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Method: r.method, URL: target, Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return data, nil
}
