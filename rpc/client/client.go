package client

import (
	"encoding/json"
	"fmt"

	cdkrpc "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/agglayer/cascadekit/rpc"
)

var jSONRPCCall = cdkrpc.JSONRPCCall

// Client queries the cascade namespace of a running relayer
type Client struct {
	url string
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}

// GetStatus calls cascade_getStatus
func (c *Client) GetStatus() (*rpc.StatusResult, error) {
	var result rpc.StatusResult
	if err := c.call("getStatus", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetClaims calls cascade_getClaims
func (c *Client) GetClaims() (*rpc.ClaimsResult, error) {
	var result rpc.ClaimsResult
	if err := c.call("getClaims", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DecodeSignal calls cascade_decodeSignal
func (c *Client) DecodeSignal(text string) (*rpc.DecodedSignal, error) {
	var result rpc.DecodedSignal
	if err := c.call("decodeSignal", &result, text); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) call(method string, result interface{}, params ...interface{}) error {
	fullMethod := rpc.CASCADE + "_" + method
	response, err := jSONRPCCall(c.url, fullMethod, params...)
	if err != nil {
		return fmt.Errorf("error calling %s jSONRPCCall. Err:%w", fullMethod, err)
	}
	if response.Error != nil {
		return fmt.Errorf("error calling %s, server returns error: %v %v",
			fullMethod, response.Error.Code, response.Error.Message)
	}
	if len(response.Result) == 0 || string(response.Result) == "null" {
		return fmt.Errorf("%s: result not found in RPC response", fullMethod)
	}
	if err := json.Unmarshal(response.Result, result); err != nil {
		return fmt.Errorf("error calling %s. Unmarshal json fails. Err:%w", fullMethod, err)
	}
	return nil
}
