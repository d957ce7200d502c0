package endpoint

import "strings"

// MergeConfig merges an endpoint configuration over client defaults.
//
// Endpoint fields win whenever they are set. Unset fields inherit the client
// value, except the method-keyed handlers (OnGet..OnDelete): only the one
// matching the endpoint's method is inherited. The effective PreRequest,
// OnThen and OnCatch are the endpoint's own, then the matching method
// handler's, then the client's general hooks.
//
// With a nil endpoint the client configuration is returned as is.
func MergeConfig(client *ClientConfig, ep *EndpointConfig) RequestConfig {
	var cc ClientConfig
	if client != nil {
		cc = *client
	}
	if ep == nil {
		return RequestConfig{
			Options:  cc.Options,
			OnGet:    cc.OnGet,
			OnPost:   cc.OnPost,
			OnPut:    cc.OnPut,
			OnPatch:  cc.OnPatch,
			OnDelete: cc.OnDelete,
		}
	}

	merged := RequestConfig{
		URL:     ep.URL,
		Method:  Method(strings.ToUpper(string(ep.Method))),
		Options: mergeOptions(cc.Options, ep.Options),
	}

	var handler *Handler
	switch merged.Method {
	case MethodGet:
		merged.OnGet, handler = cc.OnGet, cc.OnGet
	case MethodPost:
		merged.OnPost, handler = cc.OnPost, cc.OnPost
	case MethodPut:
		merged.OnPut, handler = cc.OnPut, cc.OnPut
	case MethodPatch:
		merged.OnPatch, handler = cc.OnPatch, cc.OnPatch
	case MethodDelete:
		merged.OnDelete, handler = cc.OnDelete, cc.OnDelete
	}

	merged.PreRequest = ep.PreRequest
	merged.OnThen = ep.OnThen
	merged.OnCatch = ep.OnCatch
	if handler != nil {
		if merged.PreRequest == nil {
			merged.PreRequest = handler.PreRequest
		}
		if merged.OnThen == nil {
			merged.OnThen = handler.OnThen
		}
		if merged.OnCatch == nil {
			merged.OnCatch = handler.OnCatch
		}
	}
	if merged.PreRequest == nil {
		merged.PreRequest = cc.PreRequest
	}
	if merged.OnThen == nil {
		merged.OnThen = cc.OnThen
	}
	if merged.OnCatch == nil {
		merged.OnCatch = cc.OnCatch
	}

	return merged
}

// mergeOptions copies every non-hook field, endpoint first.
func mergeOptions(client, ep Options) Options {
	out := ep
	if out.BaseURL == "" {
		out.BaseURL = client.BaseURL
	}
	if out.Headers == nil {
		out.Headers = client.Headers
	}
	if out.Timeout == nil {
		out.Timeout = client.Timeout
	}
	if out.Auth == nil {
		out.Auth = client.Auth
	}
	if out.DataSerializer == nil {
		out.DataSerializer = client.DataSerializer
	}
	if out.ParamsSerializer == nil {
		out.ParamsSerializer = client.ParamsSerializer
	}
	if out.ExtractData == nil {
		out.ExtractData = client.ExtractData
	}
	if out.ExtractCatchData == nil {
		out.ExtractCatchData = client.ExtractCatchData
	}
	return out
}
