package common

// UserDataKeyPrefix is prepended to a username to form its storage key.
const UserDataKeyPrefix = "user_data_"
