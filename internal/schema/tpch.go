package schema

import "tpctools/internal/domain"

// Keys are signed on purpose; downstream Spark readers reject unsigned columns.
var tpchTableNames = []string{
	"customer", "lineitem", "nation", "orders", "part", "partsupp", "region", "supplier",
}

// dbgen -C/-S emits these two only from step 1.
var tpchWrittenOnce = []string{"nation", "region"}

var tpchFields = map[string][]domain.Field{
	"part": {
		field("p_partkey", domain.Int64, false),
		field("p_name", domain.Utf8, false),
		field("p_mfgr", domain.Utf8, false),
		field("p_brand", domain.Utf8, false),
		field("p_type", domain.Utf8, false),
		field("p_size", domain.Int32, false),
		field("p_container", domain.Utf8, false),
		field("p_retailprice", domain.Float64, false),
		field("p_comment", domain.Utf8, false),
	},
	"supplier": {
		field("s_suppkey", domain.Int64, false),
		field("s_name", domain.Utf8, false),
		field("s_address", domain.Utf8, false),
		field("s_nationkey", domain.Int64, false),
		field("s_phone", domain.Utf8, false),
		field("s_acctbal", domain.Float64, false),
		field("s_comment", domain.Utf8, false),
	},
	"partsupp": {
		field("ps_partkey", domain.Int64, false),
		field("ps_suppkey", domain.Int64, false),
		field("ps_availqty", domain.Int32, false),
		field("ps_supplycost", domain.Float64, false),
		field("ps_comment", domain.Utf8, false),
	},
	"customer": {
		field("c_custkey", domain.Int64, false),
		field("c_name", domain.Utf8, false),
		field("c_address", domain.Utf8, false),
		field("c_nationkey", domain.Int64, false),
		field("c_phone", domain.Utf8, false),
		field("c_acctbal", domain.Float64, false),
		field("c_mktsegment", domain.Utf8, false),
		field("c_comment", domain.Utf8, false),
	},
	"orders": {
		field("o_orderkey", domain.Int64, false),
		field("o_custkey", domain.Int64, false),
		field("o_orderstatus", domain.Utf8, false),
		field("o_totalprice", domain.Float64, false),
		field("o_orderdate", domain.Date32, false),
		field("o_orderpriority", domain.Utf8, false),
		field("o_clerk", domain.Utf8, false),
		field("o_shippriority", domain.Int32, false),
		field("o_comment", domain.Utf8, false),
	},
	"lineitem": {
		field("l_orderkey", domain.Int64, false),
		field("l_partkey", domain.Int64, false),
		field("l_suppkey", domain.Int64, false),
		field("l_linenumber", domain.Int32, false),
		field("l_quantity", domain.Float64, false),
		field("l_extendedprice", domain.Float64, false),
		field("l_discount", domain.Float64, false),
		field("l_tax", domain.Float64, false),
		field("l_returnflag", domain.Utf8, false),
		field("l_linestatus", domain.Utf8, false),
		field("l_shipdate", domain.Date32, false),
		field("l_commitdate", domain.Date32, false),
		field("l_receiptdate", domain.Date32, false),
		field("l_shipinstruct", domain.Utf8, false),
		field("l_shipmode", domain.Utf8, false),
		field("l_comment", domain.Utf8, false),
	},
	"nation": {
		field("n_nationkey", domain.Int64, false),
		field("n_name", domain.Utf8, false),
		field("n_regionkey", domain.Int64, false),
		field("n_comment", domain.Utf8, false),
	},
	"region": {
		field("r_regionkey", domain.Int64, false),
		field("r_name", domain.Utf8, false),
		field("r_comment", domain.Utf8, false),
	},
}
