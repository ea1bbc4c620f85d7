package validator

// Translation keys, one per rule kind. The notify package renders them from
// its message catalogue.
const (
	KeyNullOrEmpty              = "validation.if_null_or_empty"
	KeyNullOrWhiteSpace         = "validation.if_null_or_white_space"
	KeyNotNullOrEmpty           = "validation.if_not_null_or_empty"
	KeyNullOrEmptyInvalidLength = "validation.if_null_or_empty_or_invalid_length"
	KeyLowerThen                = "validation.if_lower_then"
	KeyGreaterThan              = "validation.if_greater_than"
	KeyLengthNoEqual            = "validation.if_length_no_equal"
	KeyNotEmail                 = "validation.if_not_email"
	KeyNotURL                   = "validation.if_not_url"
	KeyGreaterOrEqualsThan      = "validation.if_greater_or_equals_than"
	KeyLowerOrEqualsThan        = "validation.if_lower_or_equals_than"
	KeyRange                    = "validation.if_range"
	KeyNotRange                 = "validation.if_not_range"
	KeyContains                 = "validation.if_contains"
	KeyNotContains              = "validation.if_not_contains"
	KeyAreEquals                = "validation.if_are_equals"
	KeyNotAreEquals             = "validation.if_not_are_equals"
	KeyTrue                     = "validation.if_true"
	KeyFalse                    = "validation.if_false"
	KeyNotCPF                   = "validation.if_not_cpf"
	KeyNotCNPJ                  = "validation.if_not_cnpj"
	KeyNotGUID                  = "validation.if_not_guid"
	KeyNotUUIDVersion           = "validation.if_not_uuid_version"
	KeyCollectionIsNull         = "validation.if_collection_is_null"
	KeyCollectionIsNullOrEmpty  = "validation.if_collection_is_null_or_empty"
	KeyEqualsZero               = "validation.if_equals_zero"
	KeyNull                     = "validation.if_null"
	KeyNotNull                  = "validation.if_not_null"
	KeyZeroTime                 = "validation.if_zero_time"
)
