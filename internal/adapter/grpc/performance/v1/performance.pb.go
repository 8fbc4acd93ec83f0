// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: performance/v1/performance.proto

package performancev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GetPerformanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntityId      string                 `protobuf:"bytes,1,opt,name=entity_id,json=entityId,proto3" json:"entity_id,omitempty"`
	Period        string                 `protobuf:"bytes,2,opt,name=period,proto3" json:"period,omitempty"`   // 1D, 5D, 1M, 3M, YTD, 1Y, 5Y, MAX
	Variant       string                 `protobuf:"bytes,3,opt,name=variant,proto3" json:"variant,omitempty"` // full (default) or limited
	Live          bool                   `protobuf:"varint,4,opt,name=live,proto3" json:"live,omitempty"`      // tier-3 diagnostic path: bypass the cache entirely
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPerformanceRequest) Reset() {
	*x = GetPerformanceRequest{}
	mi := &file_performance_v1_performance_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPerformanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPerformanceRequest) ProtoMessage() {}

func (x *GetPerformanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPerformanceRequest.ProtoReflect.Descriptor instead.
func (*GetPerformanceRequest) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{0}
}

func (x *GetPerformanceRequest) GetEntityId() string {
	if x != nil {
		return x.EntityId
	}
	return ""
}

func (x *GetPerformanceRequest) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *GetPerformanceRequest) GetVariant() string {
	if x != nil {
		return x.Variant
	}
	return ""
}

func (x *GetPerformanceRequest) GetLive() bool {
	if x != nil {
		return x.Live
	}
	return false
}

type GetPerformanceResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	ReturnPct          string                 `protobuf:"bytes,1,opt,name=return_pct,json=returnPct,proto3" json:"return_pct,omitempty"`
	EffectiveStart     string                 `protobuf:"bytes,2,opt,name=effective_start,json=effectiveStart,proto3" json:"effective_start,omitempty"` // ISO date, empty when no data
	EffectiveEnd       string                 `protobuf:"bytes,3,opt,name=effective_end,json=effectiveEnd,proto3" json:"effective_end,omitempty"`
	NetCapitalDeployed string                 `protobuf:"bytes,4,opt,name=net_capital_deployed,json=netCapitalDeployed,proto3" json:"net_capital_deployed,omitempty"` // empty for limited audiences
	SnapshotCount      int32                  `protobuf:"varint,5,opt,name=snapshot_count,json=snapshotCount,proto3" json:"snapshot_count,omitempty"`
	Warnings           []string               `protobuf:"bytes,6,rep,name=warnings,proto3" json:"warnings,omitempty"`                    // diagnostic neutralization reasons
	Partial            bool                   `protobuf:"varint,7,opt,name=partial,proto3" json:"partial,omitempty"`                     // source coverage had gaps
	NoData             bool                   `protobuf:"varint,8,opt,name=no_data,json=noData,proto3" json:"no_data,omitempty"`         // explicit "no data yet" state
	CacheTier          string                 `protobuf:"bytes,9,opt,name=cache_tier,json=cacheTier,proto3" json:"cache_tier,omitempty"` // fresh | cached
	GeneratedAt        *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=generated_at,json=generatedAt,proto3" json:"generated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GetPerformanceResponse) Reset() {
	*x = GetPerformanceResponse{}
	mi := &file_performance_v1_performance_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPerformanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPerformanceResponse) ProtoMessage() {}

func (x *GetPerformanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPerformanceResponse.ProtoReflect.Descriptor instead.
func (*GetPerformanceResponse) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{1}
}

func (x *GetPerformanceResponse) GetReturnPct() string {
	if x != nil {
		return x.ReturnPct
	}
	return ""
}

func (x *GetPerformanceResponse) GetEffectiveStart() string {
	if x != nil {
		return x.EffectiveStart
	}
	return ""
}

func (x *GetPerformanceResponse) GetEffectiveEnd() string {
	if x != nil {
		return x.EffectiveEnd
	}
	return ""
}

func (x *GetPerformanceResponse) GetNetCapitalDeployed() string {
	if x != nil {
		return x.NetCapitalDeployed
	}
	return ""
}

func (x *GetPerformanceResponse) GetSnapshotCount() int32 {
	if x != nil {
		return x.SnapshotCount
	}
	return 0
}

func (x *GetPerformanceResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *GetPerformanceResponse) GetPartial() bool {
	if x != nil {
		return x.Partial
	}
	return false
}

func (x *GetPerformanceResponse) GetNoData() bool {
	if x != nil {
		return x.NoData
	}
	return false
}

func (x *GetPerformanceResponse) GetCacheTier() string {
	if x != nil {
		return x.CacheTier
	}
	return ""
}

func (x *GetPerformanceResponse) GetGeneratedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.GeneratedAt
	}
	return nil
}

type ChartPoint struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Date          string                 `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"` // ISO date
	EntityPct     string                 `protobuf:"bytes,2,opt,name=entity_pct,json=entityPct,proto3" json:"entity_pct,omitempty"`
	BenchmarkPct  string                 `protobuf:"bytes,3,opt,name=benchmark_pct,json=benchmarkPct,proto3" json:"benchmark_pct,omitempty"` // empty when the benchmark had no value that day
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChartPoint) Reset() {
	*x = ChartPoint{}
	mi := &file_performance_v1_performance_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChartPoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChartPoint) ProtoMessage() {}

func (x *ChartPoint) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChartPoint.ProtoReflect.Descriptor instead.
func (*ChartPoint) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{2}
}

func (x *ChartPoint) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *ChartPoint) GetEntityPct() string {
	if x != nil {
		return x.EntityPct
	}
	return ""
}

func (x *ChartPoint) GetBenchmarkPct() string {
	if x != nil {
		return x.BenchmarkPct
	}
	return ""
}

type GetChartRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntityId      string                 `protobuf:"bytes,1,opt,name=entity_id,json=entityId,proto3" json:"entity_id,omitempty"`
	Period        string                 `protobuf:"bytes,2,opt,name=period,proto3" json:"period,omitempty"`
	Variant       string                 `protobuf:"bytes,3,opt,name=variant,proto3" json:"variant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetChartRequest) Reset() {
	*x = GetChartRequest{}
	mi := &file_performance_v1_performance_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetChartRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetChartRequest) ProtoMessage() {}

func (x *GetChartRequest) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetChartRequest.ProtoReflect.Descriptor instead.
func (*GetChartRequest) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{3}
}

func (x *GetChartRequest) GetEntityId() string {
	if x != nil {
		return x.EntityId
	}
	return ""
}

func (x *GetChartRequest) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *GetChartRequest) GetVariant() string {
	if x != nil {
		return x.Variant
	}
	return ""
}

type GetChartResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Points            []*ChartPoint          `protobuf:"bytes,1,rep,name=points,proto3" json:"points,omitempty"`
	EffectiveStart    string                 `protobuf:"bytes,2,opt,name=effective_start,json=effectiveStart,proto3" json:"effective_start,omitempty"`
	HeadlineReturnPct string                 `protobuf:"bytes,3,opt,name=headline_return_pct,json=headlineReturnPct,proto3" json:"headline_return_pct,omitempty"` // canonical number for the same window
	Partial           bool                   `protobuf:"varint,4,opt,name=partial,proto3" json:"partial,omitempty"`
	NoData            bool                   `protobuf:"varint,5,opt,name=no_data,json=noData,proto3" json:"no_data,omitempty"`
	CacheTier         string                 `protobuf:"bytes,6,opt,name=cache_tier,json=cacheTier,proto3" json:"cache_tier,omitempty"`
	GeneratedAt       *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=generated_at,json=generatedAt,proto3" json:"generated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetChartResponse) Reset() {
	*x = GetChartResponse{}
	mi := &file_performance_v1_performance_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetChartResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetChartResponse) ProtoMessage() {}

func (x *GetChartResponse) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetChartResponse.ProtoReflect.Descriptor instead.
func (*GetChartResponse) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{4}
}

func (x *GetChartResponse) GetPoints() []*ChartPoint {
	if x != nil {
		return x.Points
	}
	return nil
}

func (x *GetChartResponse) GetEffectiveStart() string {
	if x != nil {
		return x.EffectiveStart
	}
	return ""
}

func (x *GetChartResponse) GetHeadlineReturnPct() string {
	if x != nil {
		return x.HeadlineReturnPct
	}
	return ""
}

func (x *GetChartResponse) GetPartial() bool {
	if x != nil {
		return x.Partial
	}
	return false
}

func (x *GetChartResponse) GetNoData() bool {
	if x != nil {
		return x.NoData
	}
	return false
}

func (x *GetChartResponse) GetCacheTier() string {
	if x != nil {
		return x.CacheTier
	}
	return ""
}

func (x *GetChartResponse) GetGeneratedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.GeneratedAt
	}
	return nil
}

type GetLeaderboardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Period        string                 `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	Variant       string                 `protobuf:"bytes,2,opt,name=variant,proto3" json:"variant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLeaderboardRequest) Reset() {
	*x = GetLeaderboardRequest{}
	mi := &file_performance_v1_performance_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLeaderboardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLeaderboardRequest) ProtoMessage() {}

func (x *GetLeaderboardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLeaderboardRequest.ProtoReflect.Descriptor instead.
func (*GetLeaderboardRequest) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{5}
}

func (x *GetLeaderboardRequest) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *GetLeaderboardRequest) GetVariant() string {
	if x != nil {
		return x.Variant
	}
	return ""
}

type LeaderboardRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntityId      string                 `protobuf:"bytes,1,opt,name=entity_id,json=entityId,proto3" json:"entity_id,omitempty"`
	ReturnPct     string                 `protobuf:"bytes,2,opt,name=return_pct,json=returnPct,proto3" json:"return_pct,omitempty"`
	SnapshotCount int32                  `protobuf:"varint,3,opt,name=snapshot_count,json=snapshotCount,proto3" json:"snapshot_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LeaderboardRow) Reset() {
	*x = LeaderboardRow{}
	mi := &file_performance_v1_performance_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LeaderboardRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LeaderboardRow) ProtoMessage() {}

func (x *LeaderboardRow) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LeaderboardRow.ProtoReflect.Descriptor instead.
func (*LeaderboardRow) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{6}
}

func (x *LeaderboardRow) GetEntityId() string {
	if x != nil {
		return x.EntityId
	}
	return ""
}

func (x *LeaderboardRow) GetReturnPct() string {
	if x != nil {
		return x.ReturnPct
	}
	return ""
}

func (x *LeaderboardRow) GetSnapshotCount() int32 {
	if x != nil {
		return x.SnapshotCount
	}
	return 0
}

type GetLeaderboardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          []*LeaderboardRow      `protobuf:"bytes,1,rep,name=rows,proto3" json:"rows,omitempty"`
	TradingDay    string                 `protobuf:"bytes,2,opt,name=trading_day,json=tradingDay,proto3" json:"trading_day,omitempty"`
	Watermark     string                 `protobuf:"bytes,3,opt,name=watermark,proto3" json:"watermark,omitempty"`
	GeneratedAt   *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=generated_at,json=generatedAt,proto3" json:"generated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLeaderboardResponse) Reset() {
	*x = GetLeaderboardResponse{}
	mi := &file_performance_v1_performance_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLeaderboardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLeaderboardResponse) ProtoMessage() {}

func (x *GetLeaderboardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLeaderboardResponse.ProtoReflect.Descriptor instead.
func (*GetLeaderboardResponse) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{7}
}

func (x *GetLeaderboardResponse) GetRows() []*LeaderboardRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

func (x *GetLeaderboardResponse) GetTradingDay() string {
	if x != nil {
		return x.TradingDay
	}
	return ""
}

func (x *GetLeaderboardResponse) GetWatermark() string {
	if x != nil {
		return x.Watermark
	}
	return ""
}

func (x *GetLeaderboardResponse) GetGeneratedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.GeneratedAt
	}
	return nil
}

type RefreshLeaderboardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntityIds     []string               `protobuf:"bytes,1,rep,name=entity_ids,json=entityIds,proto3" json:"entity_ids,omitempty"`
	Period        string                 `protobuf:"bytes,2,opt,name=period,proto3" json:"period,omitempty"` // empty runs the sweep across every supported period
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshLeaderboardRequest) Reset() {
	*x = RefreshLeaderboardRequest{}
	mi := &file_performance_v1_performance_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshLeaderboardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshLeaderboardRequest) ProtoMessage() {}

func (x *RefreshLeaderboardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshLeaderboardRequest.ProtoReflect.Descriptor instead.
func (*RefreshLeaderboardRequest) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{8}
}

func (x *RefreshLeaderboardRequest) GetEntityIds() []string {
	if x != nil {
		return x.EntityIds
	}
	return nil
}

func (x *RefreshLeaderboardRequest) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

type RefreshLeaderboardResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Succeeded       int32                  `protobuf:"varint,1,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed          int32                  `protobuf:"varint,2,opt,name=failed,proto3" json:"failed,omitempty"`
	FailedEntityIds []string               `protobuf:"bytes,3,rep,name=failed_entity_ids,json=failedEntityIds,proto3" json:"failed_entity_ids,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *RefreshLeaderboardResponse) Reset() {
	*x = RefreshLeaderboardResponse{}
	mi := &file_performance_v1_performance_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshLeaderboardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshLeaderboardResponse) ProtoMessage() {}

func (x *RefreshLeaderboardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshLeaderboardResponse.ProtoReflect.Descriptor instead.
func (*RefreshLeaderboardResponse) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{9}
}

func (x *RefreshLeaderboardResponse) GetSucceeded() int32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *RefreshLeaderboardResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *RefreshLeaderboardResponse) GetFailedEntityIds() []string {
	if x != nil {
		return x.FailedEntityIds
	}
	return nil
}

type InvalidateEntityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntityId      string                 `protobuf:"bytes,1,opt,name=entity_id,json=entityId,proto3" json:"entity_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvalidateEntityRequest) Reset() {
	*x = InvalidateEntityRequest{}
	mi := &file_performance_v1_performance_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvalidateEntityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvalidateEntityRequest) ProtoMessage() {}

func (x *InvalidateEntityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvalidateEntityRequest.ProtoReflect.Descriptor instead.
func (*InvalidateEntityRequest) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{10}
}

func (x *InvalidateEntityRequest) GetEntityId() string {
	if x != nil {
		return x.EntityId
	}
	return ""
}

type InvalidateEntityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvalidateEntityResponse) Reset() {
	*x = InvalidateEntityResponse{}
	mi := &file_performance_v1_performance_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvalidateEntityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvalidateEntityResponse) ProtoMessage() {}

func (x *InvalidateEntityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_performance_v1_performance_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvalidateEntityResponse.ProtoReflect.Descriptor instead.
func (*InvalidateEntityResponse) Descriptor() ([]byte, []int) {
	return file_performance_v1_performance_proto_rawDescGZIP(), []int{11}
}

var File_performance_v1_performance_proto protoreflect.FileDescriptor

const file_performance_v1_performance_proto_rawDesc = "" +
	"\n" +
	" performance/v1/performance.proto\x12\x0eperformance.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"z\n" +
	"\x15GetPerformanceRequest\x12\x1b\n" +
	"\tentity_id\x18\x01 \x01(\tR\bentityId\x12\x16\n" +
	"\x06period\x18\x02 \x01(\tR\x06period\x12\x18\n" +
	"\avariant\x18\x03 \x01(\tR\avariant\x12\x12\n" +
	"\x04live\x18\x04 \x01(\bR\x04live\"\x8b\x03\n" +
	"\x16GetPerformanceResponse\x12\x1d\n" +
	"\n" +
	"return_pct\x18\x01 \x01(\tR\treturnPct\x12'\n" +
	"\x0feffective_start\x18\x02 \x01(\tR\x0eeffectiveStart\x12#\n" +
	"\reffective_end\x18\x03 \x01(\tR\feffectiveEnd\x120\n" +
	"\x14net_capital_deployed\x18\x04 \x01(\tR\x12netCapitalDeployed\x12%\n" +
	"\x0esnapshot_count\x18\x05 \x01(\x05R\rsnapshotCount\x12\x1a\n" +
	"\bwarnings\x18\x06 \x03(\tR\bwarnings\x12\x18\n" +
	"\apartial\x18\a \x01(\bR\apartial\x12\x17\n" +
	"\ano_data\x18\b \x01(\bR\x06noData\x12\x1d\n" +
	"\n" +
	"cache_tier\x18\t \x01(\tR\tcacheTier\x12=\n" +
	"\fgenerated_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\vgeneratedAt\"d\n" +
	"\n" +
	"ChartPoint\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\x12\x1d\n" +
	"\n" +
	"entity_pct\x18\x02 \x01(\tR\tentityPct\x12#\n" +
	"\rbenchmark_pct\x18\x03 \x01(\tR\fbenchmarkPct\"`\n" +
	"\x0fGetChartRequest\x12\x1b\n" +
	"\tentity_id\x18\x01 \x01(\tR\bentityId\x12\x16\n" +
	"\x06period\x18\x02 \x01(\tR\x06period\x12\x18\n" +
	"\avariant\x18\x03 \x01(\tR\avariant\"\xb0\x02\n" +
	"\x10GetChartResponse\x122\n" +
	"\x06points\x18\x01 \x03(\v2\x1a.performance.v1.ChartPointR\x06points\x12'\n" +
	"\x0feffective_start\x18\x02 \x01(\tR\x0eeffectiveStart\x12.\n" +
	"\x13headline_return_pct\x18\x03 \x01(\tR\x11headlineReturnPct\x12\x18\n" +
	"\apartial\x18\x04 \x01(\bR\apartial\x12\x17\n" +
	"\ano_data\x18\x05 \x01(\bR\x06noData\x12\x1d\n" +
	"\n" +
	"cache_tier\x18\x06 \x01(\tR\tcacheTier\x12=\n" +
	"\fgenerated_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\vgeneratedAt\"I\n" +
	"\x15GetLeaderboardRequest\x12\x16\n" +
	"\x06period\x18\x01 \x01(\tR\x06period\x12\x18\n" +
	"\avariant\x18\x02 \x01(\tR\avariant\"s\n" +
	"\x0eLeaderboardRow\x12\x1b\n" +
	"\tentity_id\x18\x01 \x01(\tR\bentityId\x12\x1d\n" +
	"\n" +
	"return_pct\x18\x02 \x01(\tR\treturnPct\x12%\n" +
	"\x0esnapshot_count\x18\x03 \x01(\x05R\rsnapshotCount\"\xca\x01\n" +
	"\x16GetLeaderboardResponse\x122\n" +
	"\x04rows\x18\x01 \x03(\v2\x1e.performance.v1.LeaderboardRowR\x04rows\x12\x1f\n" +
	"\vtrading_day\x18\x02 \x01(\tR\n" +
	"tradingDay\x12\x1c\n" +
	"\twatermark\x18\x03 \x01(\tR\twatermark\x12=\n" +
	"\fgenerated_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\vgeneratedAt\"R\n" +
	"\x19RefreshLeaderboardRequest\x12\x1d\n" +
	"\n" +
	"entity_ids\x18\x01 \x03(\tR\tentityIds\x12\x16\n" +
	"\x06period\x18\x02 \x01(\tR\x06period\"~\n" +
	"\x1aRefreshLeaderboardResponse\x12\x1c\n" +
	"\tsucceeded\x18\x01 \x01(\x05R\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x02 \x01(\x05R\x06failed\x12*\n" +
	"\x11failed_entity_ids\x18\x03 \x03(\tR\x0ffailedEntityIds\"6\n" +
	"\x17InvalidateEntityRequest\x12\x1b\n" +
	"\tentity_id\x18\x01 \x01(\tR\bentityId\"\x1a\n" +
	"\x18InvalidateEntityResponse2\xf9\x03\n" +
	"\x12PerformanceService\x12_\n" +
	"\x0eGetPerformance\x12%.performance.v1.GetPerformanceRequest\x1a&.performance.v1.GetPerformanceResponse\x12M\n" +
	"\bGetChart\x12\x1f.performance.v1.GetChartRequest\x1a .performance.v1.GetChartResponse\x12_\n" +
	"\x0eGetLeaderboard\x12%.performance.v1.GetLeaderboardRequest\x1a&.performance.v1.GetLeaderboardResponse\x12k\n" +
	"\x12RefreshLeaderboard\x12).performance.v1.RefreshLeaderboardRequest\x1a*.performance.v1.RefreshLeaderboardResponse\x12e\n" +
	"\x10InvalidateEntity\x12'.performance.v1.InvalidateEntityRequest\x1a(.performance.v1.InvalidateEntityResponseBcZagithub.com/FamilyApps/apestogether-performance/internal/adapter/grpc/performance/v1;performancev1b\x06proto3"

var (
	file_performance_v1_performance_proto_rawDescOnce sync.Once
	file_performance_v1_performance_proto_rawDescData []byte
)

func file_performance_v1_performance_proto_rawDescGZIP() []byte {
	file_performance_v1_performance_proto_rawDescOnce.Do(func() {
		file_performance_v1_performance_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_performance_v1_performance_proto_rawDesc), len(file_performance_v1_performance_proto_rawDesc)))
	})
	return file_performance_v1_performance_proto_rawDescData
}

var file_performance_v1_performance_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_performance_v1_performance_proto_goTypes = []any{
	(*GetPerformanceRequest)(nil),      // 0: performance.v1.GetPerformanceRequest
	(*GetPerformanceResponse)(nil),     // 1: performance.v1.GetPerformanceResponse
	(*ChartPoint)(nil),                 // 2: performance.v1.ChartPoint
	(*GetChartRequest)(nil),            // 3: performance.v1.GetChartRequest
	(*GetChartResponse)(nil),           // 4: performance.v1.GetChartResponse
	(*GetLeaderboardRequest)(nil),      // 5: performance.v1.GetLeaderboardRequest
	(*LeaderboardRow)(nil),             // 6: performance.v1.LeaderboardRow
	(*GetLeaderboardResponse)(nil),     // 7: performance.v1.GetLeaderboardResponse
	(*RefreshLeaderboardRequest)(nil),  // 8: performance.v1.RefreshLeaderboardRequest
	(*RefreshLeaderboardResponse)(nil), // 9: performance.v1.RefreshLeaderboardResponse
	(*InvalidateEntityRequest)(nil),    // 10: performance.v1.InvalidateEntityRequest
	(*InvalidateEntityResponse)(nil),   // 11: performance.v1.InvalidateEntityResponse
	(*timestamppb.Timestamp)(nil),      // 12: google.protobuf.Timestamp
}
var file_performance_v1_performance_proto_depIdxs = []int32{
	12, // 0: performance.v1.GetPerformanceResponse.generated_at:type_name -> google.protobuf.Timestamp
	2,  // 1: performance.v1.GetChartResponse.points:type_name -> performance.v1.ChartPoint
	12, // 2: performance.v1.GetChartResponse.generated_at:type_name -> google.protobuf.Timestamp
	6,  // 3: performance.v1.GetLeaderboardResponse.rows:type_name -> performance.v1.LeaderboardRow
	12, // 4: performance.v1.GetLeaderboardResponse.generated_at:type_name -> google.protobuf.Timestamp
	0,  // 5: performance.v1.PerformanceService.GetPerformance:input_type -> performance.v1.GetPerformanceRequest
	3,  // 6: performance.v1.PerformanceService.GetChart:input_type -> performance.v1.GetChartRequest
	5,  // 7: performance.v1.PerformanceService.GetLeaderboard:input_type -> performance.v1.GetLeaderboardRequest
	8,  // 8: performance.v1.PerformanceService.RefreshLeaderboard:input_type -> performance.v1.RefreshLeaderboardRequest
	10, // 9: performance.v1.PerformanceService.InvalidateEntity:input_type -> performance.v1.InvalidateEntityRequest
	1,  // 10: performance.v1.PerformanceService.GetPerformance:output_type -> performance.v1.GetPerformanceResponse
	4,  // 11: performance.v1.PerformanceService.GetChart:output_type -> performance.v1.GetChartResponse
	7,  // 12: performance.v1.PerformanceService.GetLeaderboard:output_type -> performance.v1.GetLeaderboardResponse
	9,  // 13: performance.v1.PerformanceService.RefreshLeaderboard:output_type -> performance.v1.RefreshLeaderboardResponse
	11, // 14: performance.v1.PerformanceService.InvalidateEntity:output_type -> performance.v1.InvalidateEntityResponse
	10, // [10:15] is the sub-list for method output_type
	5,  // [5:10] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_performance_v1_performance_proto_init() }
func file_performance_v1_performance_proto_init() {
	if File_performance_v1_performance_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_performance_v1_performance_proto_rawDesc), len(file_performance_v1_performance_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_performance_v1_performance_proto_goTypes,
		DependencyIndexes: file_performance_v1_performance_proto_depIdxs,
		MessageInfos:      file_performance_v1_performance_proto_msgTypes,
	}.Build()
	File_performance_v1_performance_proto = out.File
	file_performance_v1_performance_proto_goTypes = nil
	file_performance_v1_performance_proto_depIdxs = nil
}
