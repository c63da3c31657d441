package config

// This values doesnt have a default value because depend on the
// environment / deployment
const DefaultMandatoryVars = `
ChainURL = "http://localhost:8545"
# 0 accepts the chain id reported by the node
ChainID = 0

TradeAddr = "0x0000000000000000000000000000000000000000"
BridgeAddr = "0x0000000000000000000000000000000000000000"
CascadeAddr = "0x0000000000000000000000000000000000000000"

KeystorePath = "/app/cascade.keystore"
KeystorePassword = "test"
`

// This doesnt below to config, but are the vars used
// to avoid repetition in config-files
const DefaultVars = `
PathRWData = "/tmp/cascadekit"
`

// DefaultValues is the default configuration. Placeholders are quoted so every file stays valid TOML
// before rendering; numeric and boolean fields accept the rendered strings.
const DefaultValues = `
[Log]
Environment = "development" # "production" or "development"
Level = "info"
Outputs = ["stderr"]

[Etherman]
URL = "{{ChainURL}}"
ChainID = "{{ChainID}}"
DialTimeout = "30s"

[Signer]
Method = "local"
Path = "{{KeystorePath}}"
Pass = "{{KeystorePassword}}"

[BlockNotifier]
BlockFinality = "LatestBlock"
CheckNewBlockInterval = "0s"
MaxCatchUpBlocks = 0

[Dispatcher]
TradeAddr = "{{TradeAddr}}"
BridgeAddr = "{{BridgeAddr}}"
Selectors = ["0x38ed1739", "0x8803dbee", "0x7ff36ab5", "0x18cbafe5"]
BridgeCacheRetention = "10m"
RPCRetries = 3
RPCRetryDelay = "1s"
MaxBlockIdle = "0s"

[Signal]
Path = ["WETH", "USDC"]

[Submitter]
CascadeAddr = "{{CascadeAddr}}"
MaxAttempts = 13
BaseFee = 2000000000
FeeStep = 1000000000
MaxFee = 50000000000
GasLimit = 500000
BackoffBase = "300ms"

[ClaimReconciler]
Period = "30s"
GasLimit = 200000
Fee = 2000000000

[Journal]
Enabled = false
DBPath = "{{PathRWData}}/journal.sqlite"
RetentionPeriod = "168h"
PruneInterval = "1h"

[REST]
Enabled = true
Host = "0.0.0.0"
Port = 5577
ReadTimeout = "2s"
WriteTimeout = "2s"

[RPC]
Host = "0.0.0.0"
Port = 5576
ReadTimeout = "2s"
WriteTimeout = "2s"
MaxRequestsPerIPAndSecond = 10

[Prometheus]
Enabled = false
Host = "localhost"
Port = 9091

[Profiling]
ProfilingHost = "localhost"
ProfilingPort = 6060
ProfilingEnabled = false
`
