package rpc

import (
	"encoding/json"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/lockbridge/rpc/types"
)

var jSONRPCCall = rpc.JSONRPCCall

// BridgeClientInterface is implemented by Client
type BridgeClientInterface interface {
	Initialize(env *types.Envelope) (*types.Record, error)
	Lock(env *types.Envelope) (*types.TransferResult, error)
	Burn(env *types.Envelope) (*types.TransferResult, error)
	Mint(env *types.Envelope) (*types.RedeemResult, error)
	Unlock(env *types.Envelope) (*types.RedeemResult, error)
	Pause(env *types.Envelope) (*types.PauseResult, error)
	Unpause(env *types.Envelope) (*types.PauseResult, error)
	GetRecord(bridgeName string) (*types.Record, error)
	GetEvents(bridgeName string, fromID int64, limit int) ([]*types.Event, error)
	IsProcessed(bridgeName string, direction string, nonce uint64) (bool, error)
}

// Client calls the "bridge" endpoints of a node
type Client struct {
	url string
}

// NewClient returns a client of the node listening at url
func NewClient(url string) *Client {
	return &Client{url: url}
}

func (c *Client) Initialize(env *types.Envelope) (*types.Record, error) {
	result := &types.Record{}
	return result, c.call(result, "bridge_initialize", env)
}

func (c *Client) Lock(env *types.Envelope) (*types.TransferResult, error) {
	result := &types.TransferResult{}
	return result, c.call(result, "bridge_lock", env)
}

func (c *Client) Burn(env *types.Envelope) (*types.TransferResult, error) {
	result := &types.TransferResult{}
	return result, c.call(result, "bridge_burn", env)
}

func (c *Client) Mint(env *types.Envelope) (*types.RedeemResult, error) {
	result := &types.RedeemResult{}
	return result, c.call(result, "bridge_mint", env)
}

func (c *Client) Unlock(env *types.Envelope) (*types.RedeemResult, error) {
	result := &types.RedeemResult{}
	return result, c.call(result, "bridge_unlock", env)
}

func (c *Client) Pause(env *types.Envelope) (*types.PauseResult, error) {
	result := &types.PauseResult{}
	return result, c.call(result, "bridge_pause", env)
}

func (c *Client) Unpause(env *types.Envelope) (*types.PauseResult, error) {
	result := &types.PauseResult{}
	return result, c.call(result, "bridge_unpause", env)
}

// GetRecord returns the record of the bridge named bridgeName
func (c *Client) GetRecord(bridgeName string) (*types.Record, error) {
	result := &types.Record{}
	return result, c.call(result, "bridge_getRecord", bridgeName)
}

// GetEvents returns up to limit events of the log of bridgeName with id >= fromID
func (c *Client) GetEvents(bridgeName string, fromID int64, limit int) ([]*types.Event, error) {
	result := []*types.Event{}
	if err := c.call(&result, "bridge_getEvents", bridgeName, fromID, limit); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) IsProcessed(bridgeName string, direction string, nonce uint64) (bool, error) {
	var result bool
	err := c.call(&result, "bridge_isProcessed", bridgeName, direction, nonce)
	return result, err
}

// call decodes the result of method into result. Error responses are
// converted back into the bridge errors behind their code.
func (c *Client) call(result interface{}, method string, params ...interface{}) error {
	response, err := jSONRPCCall(c.url, method, params...)
	if err != nil {
		return err
	}
	if response.Error != nil {
		return codeToError(response.Error.Code, response.Error.Message)
	}
	return json.Unmarshal(response.Result, result)
}
