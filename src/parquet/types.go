package parquet

// Pokemon is one export row. A pokemon with two types produces two rows.
type Pokemon struct {
	Id         int32  `parquet:"name=id, type=INT32"`
	Name       string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Weight     int32  `parquet:"name=weight, type=INT32"`
	Height     int32  `parquet:"name=height, type=INT32"`
	Type       string `parquet:"name=type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Generation int32  `parquet:"name=generation, type=INT32"`
	Image      string `parquet:"name=image, type=BYTE_ARRAY, convertedtype=UTF8"`
}
