package config

type DynamoConfig struct {
	TableName  string `validate:"required"`
	TtlMinutes int    `validate:"gte=1"`
}

// GetDynamoConfig returns nil when CALL_OUTCOME_TABLE is unset; call
// outcomes are then only logged.
func GetDynamoConfig() (*DynamoConfig, error) {
	tableName := getEnv("CALL_OUTCOME_TABLE", "")
	if tableName == "" {
		return nil, nil
	}

	ttlMinutes, err := getEnvInt("CALL_OUTCOME_TTL_MINUTES", 60*24*30)
	if err != nil {
		return nil, err
	}

	conf := &DynamoConfig{
		TableName:  tableName,
		TtlMinutes: ttlMinutes,
	}
	if err := validateConfig("dynamo", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
