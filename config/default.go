package config

// DefaultMandatoryVars depend on the deployment and have no sensible default
const DefaultMandatoryVars = `
# DeploymentID separates the signed requests of different deployments
DeploymentID = "lockbridge-local"

# OwnerAddr initializes both bridges at startup. Leave the zero address to
# initialize them later through bridge_initialize
OwnerAddr = "0x0000000000000000000000000000000000000000"
# CustodyAddr holds the native funds locked on the home bridge
CustodyAddr = "0x00000000000000000000000000000000000000c0"
# RelayerAddr is the identity of the in-process relayers
RelayerAddr = "0x0000000000000000000000000000000000000001"
`

// DefaultVars are referenced by DefaultValues
const DefaultVars = `
PathRWData = "/tmp/lockbridge"
`

// DefaultValues is the default configuration
const DefaultValues = `
# Log configuration
[Log]
  # Environment is the environment where the node is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

[Common]
  DeploymentID = "{{DeploymentID}}"

[HomeBridge]
  Name = "home"
  DBPath = "{{PathRWData}}/home_bridge.sqlite"
  Owner = "{{OwnerAddr}}"
  CustodyAccount = "{{CustodyAddr}}"
  # DestinationAddressScheme is the grammar of the addresses on the foreign ledger
  DestinationAddressScheme = "evm"
  Genesis = []
  [HomeBridge.ProcessedNonces]
    # MaxPending is the max number of out of order redemptions. 0 means unbounded
    MaxPending = 10000
    CacheSize = 4096
  [HomeBridge.Relayers]
    Mint = []
    Unlock = ["{{RelayerAddr}}"]
    Pause = []
    Unpause = []

[ForeignBridge]
  Name = "foreign"
  DBPath = "{{PathRWData}}/foreign_bridge.sqlite"
  Owner = "{{OwnerAddr}}"
  CustodyAccount = "{{CustodyAddr}}"
  DestinationAddressScheme = "evm"
  Genesis = []
  [ForeignBridge.ProcessedNonces]
    MaxPending = 10000
    CacheSize = 4096
  [ForeignBridge.Relayers]
    Mint = ["{{RelayerAddr}}"]
    Unlock = []
    Pause = []
    Unpause = []

[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "0.0.0.0"
  # Port defines the port to serve the endpoints via HTTP
  Port = 5576
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "2s"
  # WriteTimeout is the HTTP server write timeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "2s"
  # MaxRequestsPerIPAndSecond defines how much requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 10

[HomeToForeignRelayer]
  DBPath = "{{PathRWData}}/relayer_h2f.sqlite"
  Identity = "{{RelayerAddr}}"
  # SourceURL, if set, follows the home bridge log through the JSON-RPC of another node
  SourceURL = ""
  # DestinationURL, if set, redeems through the JSON-RPC of another node
  DestinationURL = ""
  BatchSize = 100
  WaitOnEmptyLog = "1s"
  # RetryAfterErrorPeriod is the time that will be waited when an unexpected error happens before retry
  RetryAfterErrorPeriod = "1s"
  # MaxRetryAttemptsAfterError is the maximum number of consecutive attempts that will happen before panicing.
  # Any number smaller than zero will be considered as unlimited retries
  MaxRetryAttemptsAfterError = -1
  [HomeToForeignRelayer.PrivateKey]
    Path = ""
    Password = ""

[ForeignToHomeRelayer]
  DBPath = "{{PathRWData}}/relayer_f2h.sqlite"
  Identity = "{{RelayerAddr}}"
  SourceURL = ""
  DestinationURL = ""
  BatchSize = 100
  WaitOnEmptyLog = "1s"
  RetryAfterErrorPeriod = "1s"
  MaxRetryAttemptsAfterError = -1
  [ForeignToHomeRelayer.PrivateKey]
    Path = ""
    Password = ""
`
