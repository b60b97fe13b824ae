package schema

import "tpctools/internal/domain"

// TPC-DS keys are int32 and monetary columns decimal; everything except the
// surrogate and business keys is nullable because dsdgen emits empty fields.
var tpcdsTableNames = []string{
	"call_center",
	"catalog_page",
	"catalog_sales",
	"catalog_returns",
	"customer",
	"customer_address",
	"customer_demographics",
	"date_dim",
	"income_band",
	"household_demographics",
	"inventory",
	"store",
	"ship_mode",
	"reason",
	"promotion",
	"item",
	"store_sales",
	"store_returns",
	"web_page",
	"warehouse",
	"time_dim",
	"web_site",
	"web_sales",
	"web_returns",
}

// Small dimensions dsdgen -PARALLEL leaves to child 1.
var tpcdsWrittenOnce = []string{
	"call_center",
	"catalog_page",
	"date_dim",
	"income_band",
	"household_demographics",
	"store",
	"ship_mode",
	"reason",
	"promotion",
	"web_page",
	"warehouse",
	"time_dim",
	"web_site",
}

var tpcdsFields = map[string][]domain.Field{
	"customer_address": {
		field("ca_address_sk", domain.Int32, false),
		field("ca_address_id", domain.Utf8, false),
		field("ca_street_number", domain.Utf8, true),
		field("ca_street_name", domain.Utf8, true),
		field("ca_street_type", domain.Utf8, true),
		field("ca_suite_number", domain.Utf8, true),
		field("ca_city", domain.Utf8, true),
		field("ca_county", domain.Utf8, true),
		field("ca_state", domain.Utf8, true),
		field("ca_zip", domain.Utf8, true),
		field("ca_country", domain.Utf8, true),
		field("ca_gmt_offset", domain.Decimal(5, 2), true),
		field("ca_location_type", domain.Utf8, true),
	},

	"customer_demographics": {
		field("cd_demo_sk", domain.Int32, false),
		field("cd_gender", domain.Utf8, true),
		field("cd_marital_status", domain.Utf8, true),
		field("cd_education_status", domain.Utf8, true),
		field("cd_purchase_estimate", domain.Int32, true),
		field("cd_credit_rating", domain.Utf8, true),
		field("cd_dep_count", domain.Int32, true),
		field("cd_dep_employed_count", domain.Int32, true),
		field("cd_dep_college_count", domain.Int32, true),
	},

	"date_dim": {
		field("d_date_sk", domain.Int32, false),
		field("d_date_id", domain.Utf8, false),
		field("d_date", domain.Date32, true),
		field("d_month_seq", domain.Int32, true),
		field("d_week_seq", domain.Int32, true),
		field("d_quarter_seq", domain.Int32, true),
		field("d_year", domain.Int32, true),
		field("d_dow", domain.Int32, true),
		field("d_moy", domain.Int32, true),
		field("d_dom", domain.Int32, true),
		field("d_qoy", domain.Int32, true),
		field("d_fy_year", domain.Int32, true),
		field("d_fy_quarter_seq", domain.Int32, true),
		field("d_fy_week_seq", domain.Int32, true),
		field("d_day_name", domain.Utf8, true),
		field("d_quarter_name", domain.Utf8, true),
		field("d_holiday", domain.Utf8, true),
		field("d_weekend", domain.Utf8, true),
		field("d_following_holiday", domain.Utf8, true),
		field("d_first_dom", domain.Int32, true),
		field("d_last_dom", domain.Int32, true),
		field("d_same_day_ly", domain.Int32, true),
		field("d_same_day_lq", domain.Int32, true),
		field("d_current_day", domain.Utf8, true),
		field("d_current_week", domain.Utf8, true),
		field("d_current_month", domain.Utf8, true),
		field("d_current_quarter", domain.Utf8, true),
		field("d_current_year", domain.Utf8, true),
	},

	"warehouse": {
		field("w_warehouse_sk", domain.Int32, false),
		field("w_warehouse_id", domain.Utf8, false),
		field("w_warehouse_name", domain.Utf8, true),
		field("w_warehouse_sq_ft", domain.Int32, true),
		field("w_street_number", domain.Utf8, true),
		field("w_street_name", domain.Utf8, true),
		field("w_street_type", domain.Utf8, true),
		field("w_suite_number", domain.Utf8, true),
		field("w_city", domain.Utf8, true),
		field("w_county", domain.Utf8, true),
		field("w_state", domain.Utf8, true),
		field("w_zip", domain.Utf8, true),
		field("w_country", domain.Utf8, true),
		field("w_gmt_offset", domain.Decimal(5, 2), true),
	},

	"ship_mode": {
		field("sm_ship_mode_sk", domain.Int32, false),
		field("sm_ship_mode_id", domain.Utf8, false),
		field("sm_type", domain.Utf8, true),
		field("sm_code", domain.Utf8, true),
		field("sm_carrier", domain.Utf8, true),
		field("sm_contract", domain.Utf8, true),
	},

	"time_dim": {
		field("t_time_sk", domain.Int32, false),
		field("t_time_id", domain.Utf8, false),
		field("t_time", domain.Int32, true),
		field("t_hour", domain.Int32, true),
		field("t_minute", domain.Int32, true),
		field("t_second", domain.Int32, true),
		field("t_am_pm", domain.Utf8, true),
		field("t_shift", domain.Utf8, true),
		field("t_sub_shift", domain.Utf8, true),
		field("t_meal_time", domain.Utf8, true),
	},

	"reason": {
		field("r_reason_sk", domain.Int32, false),
		field("r_reason_id", domain.Utf8, false),
		field("r_reason_desc", domain.Utf8, true),
	},

	"income_band": {
		field("ib_income_band_sk", domain.Int32, false),
		field("ib_lower_bound", domain.Int32, true),
		field("ib_upper_bound", domain.Int32, true),
	},

	"item": {
		field("i_item_sk", domain.Int32, false),
		field("i_item_id", domain.Utf8, false),
		field("i_rec_start_date", domain.Date32, true),
		field("i_rec_end_date", domain.Date32, true),
		field("i_item_desc", domain.Utf8, true),
		field("i_current_price", domain.Decimal(7, 2), true),
		field("i_wholesale_cost", domain.Decimal(7, 2), true),
		field("i_brand_id", domain.Int32, true),
		field("i_brand", domain.Utf8, true),
		field("i_class_id", domain.Int32, true),
		field("i_class", domain.Utf8, true),
		field("i_category_id", domain.Int32, true),
		field("i_category", domain.Utf8, true),
		field("i_manufact_id", domain.Int32, true),
		field("i_manufact", domain.Utf8, true),
		field("i_size", domain.Utf8, true),
		field("i_formulation", domain.Utf8, true),
		field("i_color", domain.Utf8, true),
		field("i_units", domain.Utf8, true),
		field("i_container", domain.Utf8, true),
		field("i_manager_id", domain.Int32, true),
		field("i_product_name", domain.Utf8, true),
	},

	"store": {
		field("s_store_sk", domain.Int32, false),
		field("s_store_id", domain.Utf8, false),
		field("s_rec_start_date", domain.Date32, true),
		field("s_rec_end_date", domain.Date32, true),
		field("s_closed_date_sk", domain.Int32, true),
		field("s_store_name", domain.Utf8, true),
		field("s_number_employees", domain.Int32, true),
		field("s_floor_space", domain.Int32, true),
		field("s_hours", domain.Utf8, true),
		field("s_manager", domain.Utf8, true),
		field("s_market_id", domain.Int32, true),
		field("s_geography_class", domain.Utf8, true),
		field("s_market_desc", domain.Utf8, true),
		field("s_market_manager", domain.Utf8, true),
		field("s_division_id", domain.Int32, true),
		field("s_division_name", domain.Utf8, true),
		field("s_company_id", domain.Int32, true),
		field("s_company_name", domain.Utf8, true),
		field("s_street_number", domain.Utf8, true),
		field("s_street_name", domain.Utf8, true),
		field("s_street_type", domain.Utf8, true),
		field("s_suite_number", domain.Utf8, true),
		field("s_city", domain.Utf8, true),
		field("s_county", domain.Utf8, true),
		field("s_state", domain.Utf8, true),
		field("s_zip", domain.Utf8, true),
		field("s_country", domain.Utf8, true),
		field("s_gmt_offset", domain.Decimal(5, 2), true),
		field("s_tax_precentage", domain.Decimal(5, 2), true),
	},

	"call_center": {
		field("cc_call_center_sk", domain.Int32, false),
		field("cc_call_center_id", domain.Utf8, false),
		field("cc_rec_start_date", domain.Date32, true),
		field("cc_rec_end_date", domain.Date32, true),
		field("cc_closed_date_sk", domain.Int32, true),
		field("cc_open_date_sk", domain.Int32, true),
		field("cc_name", domain.Utf8, true),
		field("cc_class", domain.Utf8, true),
		field("cc_employees", domain.Int32, true),
		field("cc_sq_ft", domain.Int32, true),
		field("cc_hours", domain.Utf8, true),
		field("cc_manager", domain.Utf8, true),
		field("cc_mkt_id", domain.Int32, true),
		field("cc_mkt_class", domain.Utf8, true),
		field("cc_mkt_desc", domain.Utf8, true),
		field("cc_market_manager", domain.Utf8, true),
		field("cc_division", domain.Int32, true),
		field("cc_division_name", domain.Utf8, true),
		field("cc_company", domain.Int32, true),
		field("cc_company_name", domain.Utf8, true),
		field("cc_street_number", domain.Utf8, true),
		field("cc_street_name", domain.Utf8, true),
		field("cc_street_type", domain.Utf8, true),
		field("cc_suite_number", domain.Utf8, true),
		field("cc_city", domain.Utf8, true),
		field("cc_county", domain.Utf8, true),
		field("cc_state", domain.Utf8, true),
		field("cc_zip", domain.Utf8, true),
		field("cc_country", domain.Utf8, true),
		field("cc_gmt_offset", domain.Decimal(5, 2), true),
		field("cc_tax_percentage", domain.Decimal(5, 2), true),
	},

	"customer": {
		field("c_customer_sk", domain.Int32, false),
		field("c_customer_id", domain.Utf8, false),
		field("c_current_cdemo_sk", domain.Int32, true),
		field("c_current_hdemo_sk", domain.Int32, true),
		field("c_current_addr_sk", domain.Int32, true),
		field("c_first_shipto_date_sk", domain.Int32, true),
		field("c_first_sales_date_sk", domain.Int32, true),
		field("c_salutation", domain.Utf8, true),
		field("c_first_name", domain.Utf8, true),
		field("c_last_name", domain.Utf8, true),
		field("c_preferred_cust_flag", domain.Utf8, true),
		field("c_birth_day", domain.Int32, true),
		field("c_birth_month", domain.Int32, true),
		field("c_birth_year", domain.Int32, true),
		field("c_birth_country", domain.Utf8, true),
		field("c_login", domain.Utf8, true),
		field("c_email_address", domain.Utf8, true),
		field("c_last_review_date_sk", domain.Utf8, true),
	},

	"web_site": {
		field("web_site_sk", domain.Int32, false),
		field("web_site_id", domain.Utf8, false),
		field("web_rec_start_date", domain.Date32, true),
		field("web_rec_end_date", domain.Date32, true),
		field("web_name", domain.Utf8, true),
		field("web_open_date_sk", domain.Int32, true),
		field("web_close_date_sk", domain.Int32, true),
		field("web_class", domain.Utf8, true),
		field("web_manager", domain.Utf8, true),
		field("web_mkt_id", domain.Int32, true),
		field("web_mkt_class", domain.Utf8, true),
		field("web_mkt_desc", domain.Utf8, true),
		field("web_market_manager", domain.Utf8, true),
		field("web_company_id", domain.Int32, true),
		field("web_company_name", domain.Utf8, true),
		field("web_street_number", domain.Utf8, true),
		field("web_street_name", domain.Utf8, true),
		field("web_street_type", domain.Utf8, true),
		field("web_suite_number", domain.Utf8, true),
		field("web_city", domain.Utf8, true),
		field("web_county", domain.Utf8, true),
		field("web_state", domain.Utf8, true),
		field("web_zip", domain.Utf8, true),
		field("web_country", domain.Utf8, true),
		field("web_gmt_offset", domain.Decimal(5, 2), true),
		field("web_tax_percentage", domain.Decimal(5, 2), true),
	},

	"store_returns": {
		field("sr_returned_date_sk", domain.Int32, true),
		field("sr_return_time_sk", domain.Int32, true),
		field("sr_item_sk", domain.Int32, false),
		field("sr_customer_sk", domain.Int32, true),
		field("sr_cdemo_sk", domain.Int32, true),
		field("sr_hdemo_sk", domain.Int32, true),
		field("sr_addr_sk", domain.Int32, true),
		field("sr_store_sk", domain.Int32, true),
		field("sr_reason_sk", domain.Int32, true),
		field("sr_ticket_number", domain.Int32, false),
		field("sr_return_quantity", domain.Int32, true),
		field("sr_return_amt", domain.Decimal(7, 2), true),
		field("sr_return_tax", domain.Decimal(7, 2), true),
		field("sr_return_amt_inc_tax", domain.Decimal(7, 2), true),
		field("sr_fee", domain.Decimal(7, 2), true),
		field("sr_return_ship_cost", domain.Decimal(7, 2), true),
		field("sr_refunded_cash", domain.Decimal(7, 2), true),
		field("sr_reversed_charge", domain.Decimal(7, 2), true),
		field("sr_store_credit", domain.Decimal(7, 2), true),
		field("sr_net_loss", domain.Decimal(7, 2), true),
	},

	"household_demographics": {
		field("hd_demo_sk", domain.Int32, false),
		field("hd_income_band_sk", domain.Int32, true),
		field("hd_buy_potential", domain.Utf8, true),
		field("hd_dep_count", domain.Int32, true),
		field("hd_vehicle_count", domain.Int32, true),
	},

	"web_page": {
		field("wp_web_page_sk", domain.Int32, false),
		field("wp_web_page_id", domain.Utf8, false),
		field("wp_rec_start_date", domain.Date32, true),
		field("wp_rec_end_date", domain.Date32, true),
		field("wp_creation_date_sk", domain.Int32, true),
		field("wp_access_date_sk", domain.Int32, true),
		field("wp_autogen_flag", domain.Utf8, true),
		field("wp_customer_sk", domain.Int32, true),
		field("wp_url", domain.Utf8, true),
		field("wp_type", domain.Utf8, true),
		field("wp_char_count", domain.Int32, true),
		field("wp_link_count", domain.Int32, true),
		field("wp_image_count", domain.Int32, true),
		field("wp_max_ad_count", domain.Int32, true),
	},

	"promotion": {
		field("p_promo_sk", domain.Int32, false),
		field("p_promo_id", domain.Utf8, false),
		field("p_start_date_sk", domain.Int32, true),
		field("p_end_date_sk", domain.Int32, true),
		field("p_item_sk", domain.Int32, true),
		field("p_cost", domain.Decimal(15, 2), true),
		field("p_response_target", domain.Int32, true),
		field("p_promo_name", domain.Utf8, true),
		field("p_channel_dmail", domain.Utf8, true),
		field("p_channel_email", domain.Utf8, true),
		field("p_channel_catalog", domain.Utf8, true),
		field("p_channel_tv", domain.Utf8, true),
		field("p_channel_radio", domain.Utf8, true),
		field("p_channel_press", domain.Utf8, true),
		field("p_channel_event", domain.Utf8, true),
		field("p_channel_demo", domain.Utf8, true),
		field("p_channel_details", domain.Utf8, true),
		field("p_purpose", domain.Utf8, true),
		field("p_discount_active", domain.Utf8, true),
	},

	"catalog_page": {
		field("cp_catalog_page_sk", domain.Int32, false),
		field("cp_catalog_page_id", domain.Utf8, false),
		field("cp_start_date_sk", domain.Int32, true),
		field("cp_end_date_sk", domain.Int32, true),
		field("cp_department", domain.Utf8, true),
		field("cp_catalog_number", domain.Int32, true),
		field("cp_catalog_page_number", domain.Int32, true),
		field("cp_description", domain.Utf8, true),
		field("cp_type", domain.Utf8, true),
	},

	"inventory": {
		field("inv_date_sk", domain.Int32, false),
		field("inv_item_sk", domain.Int32, false),
		field("inv_warehouse_sk", domain.Int32, false),
		field("inv_quantity_on_hand", domain.Int32, true),
	},

	"catalog_returns": {
		field("cr_returned_date_sk", domain.Int32, true),
		field("cr_returned_time_sk", domain.Int32, true),
		field("cr_item_sk", domain.Int32, false),
		field("cr_refunded_customer_sk", domain.Int32, true),
		field("cr_refunded_cdemo_sk", domain.Int32, true),
		field("cr_refunded_hdemo_sk", domain.Int32, true),
		field("cr_refunded_addr_sk", domain.Int32, true),
		field("cr_returning_customer_sk", domain.Int32, true),
		field("cr_returning_cdemo_sk", domain.Int32, true),
		field("cr_returning_hdemo_sk", domain.Int32, true),
		field("cr_returning_addr_sk", domain.Int32, true),
		field("cr_call_center_sk", domain.Int32, true),
		field("cr_catalog_page_sk", domain.Int32, true),
		field("cr_ship_mode_sk", domain.Int32, true),
		field("cr_warehouse_sk", domain.Int32, true),
		field("cr_reason_sk", domain.Int32, true),
		field("cr_order_number", domain.Int32, false),
		field("cr_return_quantity", domain.Int32, true),
		field("cr_return_amount", domain.Decimal(7, 2), true),
		field("cr_return_tax", domain.Decimal(7, 2), true),
		field("cr_return_amt_inc_tax", domain.Decimal(7, 2), true),
		field("cr_fee", domain.Decimal(7, 2), true),
		field("cr_return_ship_cost", domain.Decimal(7, 2), true),
		field("cr_refunded_cash", domain.Decimal(7, 2), true),
		field("cr_reversed_charge", domain.Decimal(7, 2), true),
		field("cr_store_credit", domain.Decimal(7, 2), true),
		field("cr_net_loss", domain.Decimal(7, 2), true),
	},

	"web_returns": {
		field("wr_returned_date_sk", domain.Int32, true),
		field("wr_returned_time_sk", domain.Int32, true),
		field("wr_item_sk", domain.Int32, false),
		field("wr_refunded_customer_sk", domain.Int32, true),
		field("wr_refunded_cdemo_sk", domain.Int32, true),
		field("wr_refunded_hdemo_sk", domain.Int32, true),
		field("wr_refunded_addr_sk", domain.Int32, true),
		field("wr_returning_customer_sk", domain.Int32, true),
		field("wr_returning_cdemo_sk", domain.Int32, true),
		field("wr_returning_hdemo_sk", domain.Int32, true),
		field("wr_returning_addr_sk", domain.Int32, true),
		field("wr_web_page_sk", domain.Int32, true),
		field("wr_reason_sk", domain.Int32, true),
		field("wr_order_number", domain.Int32, false),
		field("wr_return_quantity", domain.Int32, true),
		field("wr_return_amt", domain.Decimal(7, 2), true),
		field("wr_return_tax", domain.Decimal(7, 2), true),
		field("wr_return_amt_inc_tax", domain.Decimal(7, 2), true),
		field("wr_fee", domain.Decimal(7, 2), true),
		field("wr_return_ship_cost", domain.Decimal(7, 2), true),
		field("wr_refunded_cash", domain.Decimal(7, 2), true),
		field("wr_reversed_charge", domain.Decimal(7, 2), true),
		field("wr_account_credit", domain.Decimal(7, 2), true),
		field("wr_net_loss", domain.Decimal(7, 2), true),
	},

	"web_sales": {
		field("ws_sold_date_sk", domain.Int32, true),
		field("ws_sold_time_sk", domain.Int32, true),
		field("ws_ship_date_sk", domain.Int32, true),
		field("ws_item_sk", domain.Int32, false),
		field("ws_bill_customer_sk", domain.Int32, true),
		field("ws_bill_cdemo_sk", domain.Int32, true),
		field("ws_bill_hdemo_sk", domain.Int32, true),
		field("ws_bill_addr_sk", domain.Int32, true),
		field("ws_ship_customer_sk", domain.Int32, true),
		field("ws_ship_cdemo_sk", domain.Int32, true),
		field("ws_ship_hdemo_sk", domain.Int32, true),
		field("ws_ship_addr_sk", domain.Int32, true),
		field("ws_web_page_sk", domain.Int32, true),
		field("ws_web_site_sk", domain.Int32, true),
		field("ws_ship_mode_sk", domain.Int32, true),
		field("ws_warehouse_sk", domain.Int32, true),
		field("ws_promo_sk", domain.Int32, true),
		field("ws_order_number", domain.Int32, false),
		field("ws_quantity", domain.Int32, true),
		field("ws_wholesale_cost", domain.Decimal(7, 2), true),
		field("ws_list_price", domain.Decimal(7, 2), true),
		field("ws_sales_price", domain.Decimal(7, 2), true),
		field("ws_ext_discount_amt", domain.Decimal(7, 2), true),
		field("ws_ext_sales_price", domain.Decimal(7, 2), true),
		field("ws_ext_wholesale_cost", domain.Decimal(7, 2), true),
		field("ws_ext_list_price", domain.Decimal(7, 2), true),
		field("ws_ext_tax", domain.Decimal(7, 2), true),
		field("ws_coupon_amt", domain.Decimal(7, 2), true),
		field("ws_ext_ship_cost", domain.Decimal(7, 2), true),
		field("ws_net_paid", domain.Decimal(7, 2), true),
		field("ws_net_paid_inc_tax", domain.Decimal(7, 2), true),
		field("ws_net_paid_inc_ship", domain.Decimal(7, 2), true),
		field("ws_net_paid_inc_ship_tax", domain.Decimal(7, 2), true),
		field("ws_net_profit", domain.Decimal(7, 2), true),
	},

	"catalog_sales": {
		field("cs_sold_date_sk", domain.Int32, true),
		field("cs_sold_time_sk", domain.Int32, true),
		field("cs_ship_date_sk", domain.Int32, true),
		field("cs_bill_customer_sk", domain.Int32, true),
		field("cs_bill_cdemo_sk", domain.Int32, true),
		field("cs_bill_hdemo_sk", domain.Int32, true),
		field("cs_bill_addr_sk", domain.Int32, true),
		field("cs_ship_customer_sk", domain.Int32, true),
		field("cs_ship_cdemo_sk", domain.Int32, true),
		field("cs_ship_hdemo_sk", domain.Int32, true),
		field("cs_ship_addr_sk", domain.Int32, true),
		field("cs_call_center_sk", domain.Int32, true),
		field("cs_catalog_page_sk", domain.Int32, true),
		field("cs_ship_mode_sk", domain.Int32, true),
		field("cs_warehouse_sk", domain.Int32, true),
		field("cs_item_sk", domain.Int32, false),
		field("cs_promo_sk", domain.Int32, true),
		field("cs_order_number", domain.Int32, false),
		field("cs_quantity", domain.Int32, true),
		field("cs_wholesale_cost", domain.Decimal(7, 2), true),
		field("cs_list_price", domain.Decimal(7, 2), true),
		field("cs_sales_price", domain.Decimal(7, 2), true),
		field("cs_ext_discount_amt", domain.Decimal(7, 2), true),
		field("cs_ext_sales_price", domain.Decimal(7, 2), true),
		field("cs_ext_wholesale_cost", domain.Decimal(7, 2), true),
		field("cs_ext_list_price", domain.Decimal(7, 2), true),
		field("cs_ext_tax", domain.Decimal(7, 2), true),
		field("cs_coupon_amt", domain.Decimal(7, 2), true),
		field("cs_ext_ship_cost", domain.Decimal(7, 2), true),
		field("cs_net_paid", domain.Decimal(7, 2), true),
		field("cs_net_paid_inc_tax", domain.Decimal(7, 2), true),
		field("cs_net_paid_inc_ship", domain.Decimal(7, 2), true),
		field("cs_net_paid_inc_ship_tax", domain.Decimal(7, 2), true),
		field("cs_net_profit", domain.Decimal(7, 2), true),
	},

	"store_sales": {
		field("ss_sold_date_sk", domain.Int32, true),
		field("ss_sold_time_sk", domain.Int32, true),
		field("ss_item_sk", domain.Int32, false),
		field("ss_customer_sk", domain.Int32, true),
		field("ss_cdemo_sk", domain.Int32, true),
		field("ss_hdemo_sk", domain.Int32, true),
		field("ss_addr_sk", domain.Int32, true),
		field("ss_store_sk", domain.Int32, true),
		field("ss_promo_sk", domain.Int32, true),
		field("ss_ticket_number", domain.Int32, false),
		field("ss_quantity", domain.Int32, true),
		field("ss_wholesale_cost", domain.Decimal(7, 2), true),
		field("ss_list_price", domain.Decimal(7, 2), true),
		field("ss_sales_price", domain.Decimal(7, 2), true),
		field("ss_ext_discount_amt", domain.Decimal(7, 2), true),
		field("ss_ext_sales_price", domain.Decimal(7, 2), true),
		field("ss_ext_wholesale_cost", domain.Decimal(7, 2), true),
		field("ss_ext_list_price", domain.Decimal(7, 2), true),
		field("ss_ext_tax", domain.Decimal(7, 2), true),
		field("ss_coupon_amt", domain.Decimal(7, 2), true),
		field("ss_net_paid", domain.Decimal(7, 2), true),
		field("ss_net_paid_inc_tax", domain.Decimal(7, 2), true),
		field("ss_net_profit", domain.Decimal(7, 2), true),
	},
}
