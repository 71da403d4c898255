// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: provider.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type CorrectSpellingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Language      string                 `protobuf:"bytes,2,opt,name=language,proto3" json:"language,omitempty"`
	Model         string                 `protobuf:"bytes,3,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CorrectSpellingRequest) Reset() {
	*x = CorrectSpellingRequest{}
	mi := &file_provider_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CorrectSpellingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CorrectSpellingRequest) ProtoMessage() {}

func (x *CorrectSpellingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CorrectSpellingRequest.ProtoReflect.Descriptor instead.
func (*CorrectSpellingRequest) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{0}
}

func (x *CorrectSpellingRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *CorrectSpellingRequest) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *CorrectSpellingRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type CorrectSpellingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CorrectSpellingResponse) Reset() {
	*x = CorrectSpellingResponse{}
	mi := &file_provider_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CorrectSpellingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CorrectSpellingResponse) ProtoMessage() {}

func (x *CorrectSpellingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CorrectSpellingResponse.ProtoReflect.Descriptor instead.
func (*CorrectSpellingResponse) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{1}
}

func (x *CorrectSpellingResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ResolveIntentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Language      string                 `protobuf:"bytes,2,opt,name=language,proto3" json:"language,omitempty"`
	Filetype      string                 `protobuf:"bytes,3,opt,name=filetype,proto3" json:"filetype,omitempty"`
	Model         string                 `protobuf:"bytes,4,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveIntentsRequest) Reset() {
	*x = ResolveIntentsRequest{}
	mi := &file_provider_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveIntentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveIntentsRequest) ProtoMessage() {}

func (x *ResolveIntentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveIntentsRequest.ProtoReflect.Descriptor instead.
func (*ResolveIntentsRequest) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{2}
}

func (x *ResolveIntentsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *ResolveIntentsRequest) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *ResolveIntentsRequest) GetFiletype() string {
	if x != nil {
		return x.Filetype
	}
	return ""
}

func (x *ResolveIntentsRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type IntentItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Intent        string                 `protobuf:"bytes,1,opt,name=intent,proto3" json:"intent,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Summary       string                 `protobuf:"bytes,3,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IntentItem) Reset() {
	*x = IntentItem{}
	mi := &file_provider_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IntentItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IntentItem) ProtoMessage() {}

func (x *IntentItem) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IntentItem.ProtoReflect.Descriptor instead.
func (*IntentItem) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{3}
}

func (x *IntentItem) GetIntent() string {
	if x != nil {
		return x.Intent
	}
	return ""
}

func (x *IntentItem) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *IntentItem) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

type ResolveIntentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*IntentItem          `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveIntentsResponse) Reset() {
	*x = ResolveIntentsResponse{}
	mi := &file_provider_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveIntentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveIntentsResponse) ProtoMessage() {}

func (x *ResolveIntentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveIntentsResponse.ProtoReflect.Descriptor instead.
func (*ResolveIntentsResponse) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{4}
}

func (x *ResolveIntentsResponse) GetItems() []*IntentItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type CreateArticleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Intent        string                 `protobuf:"bytes,2,opt,name=intent,proto3" json:"intent,omitempty"`
	Language      string                 `protobuf:"bytes,3,opt,name=language,proto3" json:"language,omitempty"`
	Filetype      string                 `protobuf:"bytes,4,opt,name=filetype,proto3" json:"filetype,omitempty"`
	Model         string                 `protobuf:"bytes,5,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateArticleRequest) Reset() {
	*x = CreateArticleRequest{}
	mi := &file_provider_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateArticleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateArticleRequest) ProtoMessage() {}

func (x *CreateArticleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateArticleRequest.ProtoReflect.Descriptor instead.
func (*CreateArticleRequest) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{5}
}

func (x *CreateArticleRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *CreateArticleRequest) GetIntent() string {
	if x != nil {
		return x.Intent
	}
	return ""
}

func (x *CreateArticleRequest) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *CreateArticleRequest) GetFiletype() string {
	if x != nil {
		return x.Filetype
	}
	return ""
}

func (x *CreateArticleRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type Recommendation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Summary       string                 `protobuf:"bytes,2,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Recommendation) Reset() {
	*x = Recommendation{}
	mi := &file_provider_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Recommendation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Recommendation) ProtoMessage() {}

func (x *Recommendation) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Recommendation.ProtoReflect.Descriptor instead.
func (*Recommendation) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{6}
}

func (x *Recommendation) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Recommendation) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

type CreateArticleResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Title           string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Slug            string                 `protobuf:"bytes,2,opt,name=slug,proto3" json:"slug,omitempty"`
	Content         string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	GeneratedBy     string                 `protobuf:"bytes,4,opt,name=generated_by,json=generatedBy,proto3" json:"generated_by,omitempty"`
	Recommendations []*Recommendation      `protobuf:"bytes,5,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateArticleResponse) Reset() {
	*x = CreateArticleResponse{}
	mi := &file_provider_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateArticleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateArticleResponse) ProtoMessage() {}

func (x *CreateArticleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateArticleResponse.ProtoReflect.Descriptor instead.
func (*CreateArticleResponse) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{7}
}

func (x *CreateArticleResponse) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateArticleResponse) GetSlug() string {
	if x != nil {
		return x.Slug
	}
	return ""
}

func (x *CreateArticleResponse) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *CreateArticleResponse) GetGeneratedBy() string {
	if x != nil {
		return x.GeneratedBy
	}
	return ""
}

func (x *CreateArticleResponse) GetRecommendations() []*Recommendation {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

type CreateImageRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Description string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	// One of "low", "normal", "high".
	Quality       string `protobuf:"bytes,2,opt,name=quality,proto3" json:"quality,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateImageRequest) Reset() {
	*x = CreateImageRequest{}
	mi := &file_provider_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateImageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateImageRequest) ProtoMessage() {}

func (x *CreateImageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateImageRequest.ProtoReflect.Descriptor instead.
func (*CreateImageRequest) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{8}
}

func (x *CreateImageRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateImageRequest) GetQuality() string {
	if x != nil {
		return x.Quality
	}
	return ""
}

type CreateImageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MimeType      string                 `protobuf:"bytes,1,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Data          []byte                 `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateImageResponse) Reset() {
	*x = CreateImageResponse{}
	mi := &file_provider_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateImageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateImageResponse) ProtoMessage() {}

func (x *CreateImageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateImageResponse.ProtoReflect.Descriptor instead.
func (*CreateImageResponse) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{9}
}

func (x *CreateImageResponse) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *CreateImageResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type Message struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          string                 `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Message) Reset() {
	*x = Message{}
	mi := &file_provider_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Message) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Message) ProtoMessage() {}

func (x *Message) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Message.ProtoReflect.Descriptor instead.
func (*Message) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{10}
}

func (x *Message) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Message) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type SummarizeThreadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*Message             `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SummarizeThreadRequest) Reset() {
	*x = SummarizeThreadRequest{}
	mi := &file_provider_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummarizeThreadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummarizeThreadRequest) ProtoMessage() {}

func (x *SummarizeThreadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummarizeThreadRequest.ProtoReflect.Descriptor instead.
func (*SummarizeThreadRequest) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{11}
}

func (x *SummarizeThreadRequest) GetMessages() []*Message {
	if x != nil {
		return x.Messages
	}
	return nil
}

func (x *SummarizeThreadRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type SummarizeThreadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summary       string                 `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SummarizeThreadResponse) Reset() {
	*x = SummarizeThreadResponse{}
	mi := &file_provider_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummarizeThreadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummarizeThreadResponse) ProtoMessage() {}

func (x *SummarizeThreadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummarizeThreadResponse.ProtoReflect.Descriptor instead.
func (*SummarizeThreadResponse) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{12}
}

func (x *SummarizeThreadResponse) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

type AttachmentPolicy struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MaxCount      int32                  `protobuf:"varint,1,opt,name=max_count,json=maxCount,proto3" json:"max_count,omitempty"`
	MaxTextChars  int32                  `protobuf:"varint,2,opt,name=max_text_chars,json=maxTextChars,proto3" json:"max_text_chars,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachmentPolicy) Reset() {
	*x = AttachmentPolicy{}
	mi := &file_provider_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachmentPolicy) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachmentPolicy) ProtoMessage() {}

func (x *AttachmentPolicy) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachmentPolicy.ProtoReflect.Descriptor instead.
func (*AttachmentPolicy) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{13}
}

func (x *AttachmentPolicy) GetMaxCount() int32 {
	if x != nil {
		return x.MaxCount
	}
	return 0
}

func (x *AttachmentPolicy) GetMaxTextChars() int32 {
	if x != nil {
		return x.MaxTextChars
	}
	return 0
}

type GenerateReplyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	History       []*Message             `protobuf:"bytes,1,rep,name=history,proto3" json:"history,omitempty"`
	Summary       string                 `protobuf:"bytes,2,opt,name=summary,proto3" json:"summary,omitempty"`
	UserInput     string                 `protobuf:"bytes,3,opt,name=user_input,json=userInput,proto3" json:"user_input,omitempty"`
	Policy        *AttachmentPolicy      `protobuf:"bytes,4,opt,name=policy,proto3" json:"policy,omitempty"`
	Model         string                 `protobuf:"bytes,5,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateReplyRequest) Reset() {
	*x = GenerateReplyRequest{}
	mi := &file_provider_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateReplyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateReplyRequest) ProtoMessage() {}

func (x *GenerateReplyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateReplyRequest.ProtoReflect.Descriptor instead.
func (*GenerateReplyRequest) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{14}
}

func (x *GenerateReplyRequest) GetHistory() []*Message {
	if x != nil {
		return x.History
	}
	return nil
}

func (x *GenerateReplyRequest) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *GenerateReplyRequest) GetUserInput() string {
	if x != nil {
		return x.UserInput
	}
	return ""
}

func (x *GenerateReplyRequest) GetPolicy() *AttachmentPolicy {
	if x != nil {
		return x.Policy
	}
	return nil
}

func (x *GenerateReplyRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type ReplyAttachment struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// "text" or "image".
	Kind             string `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Filename         string `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Text             string `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	ImageDescription string `protobuf:"bytes,4,opt,name=image_description,json=imageDescription,proto3" json:"image_description,omitempty"`
	ImageQuality     string `protobuf:"bytes,5,opt,name=image_quality,json=imageQuality,proto3" json:"image_quality,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ReplyAttachment) Reset() {
	*x = ReplyAttachment{}
	mi := &file_provider_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReplyAttachment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplyAttachment) ProtoMessage() {}

func (x *ReplyAttachment) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReplyAttachment.ProtoReflect.Descriptor instead.
func (*ReplyAttachment) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{15}
}

func (x *ReplyAttachment) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ReplyAttachment) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ReplyAttachment) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ReplyAttachment) GetImageDescription() string {
	if x != nil {
		return x.ImageDescription
	}
	return ""
}

func (x *ReplyAttachment) GetImageQuality() string {
	if x != nil {
		return x.ImageQuality
	}
	return ""
}

type GenerateReplyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Attachments   []*ReplyAttachment     `protobuf:"bytes,2,rep,name=attachments,proto3" json:"attachments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateReplyResponse) Reset() {
	*x = GenerateReplyResponse{}
	mi := &file_provider_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateReplyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateReplyResponse) ProtoMessage() {}

func (x *GenerateReplyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_provider_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateReplyResponse.ProtoReflect.Descriptor instead.
func (*GenerateReplyResponse) Descriptor() ([]byte, []int) {
	return file_provider_proto_rawDescGZIP(), []int{16}
}

func (x *GenerateReplyResponse) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *GenerateReplyResponse) GetAttachments() []*ReplyAttachment {
	if x != nil {
		return x.Attachments
	}
	return nil
}

var File_provider_proto protoreflect.FileDescriptor

const file_provider_proto_rawDesc = "" +
	"\n" +
	"\x0eprovider.proto\x12\x11lumen.provider.v1\"^\n" +
	"\x16CorrectSpellingRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1a\n" +
	"\blanguage\x18\x02 \x01(\tR\blanguage\x12\x14\n" +
	"\x05model\x18\x03 \x01(\tR\x05model\"-\n" +
	"\x17CorrectSpellingResponse\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\"{\n" +
	"\x15ResolveIntentsRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x1a\n" +
	"\blanguage\x18\x02 \x01(\tR\blanguage\x12\x1a\n" +
	"\bfiletype\x18\x03 \x01(\tR\bfiletype\x12\x14\n" +
	"\x05model\x18\x04 \x01(\tR\x05model\"T\n" +
	"\n" +
	"IntentItem\x12\x16\n" +
	"\x06intent\x18\x01 \x01(\tR\x06intent\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x18\n" +
	"\asummary\x18\x03 \x01(\tR\asummary\"M\n" +
	"\x16ResolveIntentsResponse\x123\n" +
	"\x05items\x18\x01 \x03(\v2\x1d.lumen.provider.v1.IntentItemR\x05items\"\x92\x01\n" +
	"\x14CreateArticleRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x16\n" +
	"\x06intent\x18\x02 \x01(\tR\x06intent\x12\x1a\n" +
	"\blanguage\x18\x03 \x01(\tR\blanguage\x12\x1a\n" +
	"\bfiletype\x18\x04 \x01(\tR\bfiletype\x12\x14\n" +
	"\x05model\x18\x05 \x01(\tR\x05model\"@\n" +
	"\x0eRecommendation\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12\x18\n" +
	"\asummary\x18\x02 \x01(\tR\asummary\"\xcb\x01\n" +
	"\x15CreateArticleResponse\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12\x12\n" +
	"\x04slug\x18\x02 \x01(\tR\x04slug\x12\x18\n" +
	"\acontent\x18\x03 \x01(\tR\acontent\x12!\n" +
	"\fgenerated_by\x18\x04 \x01(\tR\vgeneratedBy\x12K\n" +
	"\x0frecommendations\x18\x05 \x03(\v2!.lumen.provider.v1.RecommendationR\x0frecommendations\"P\n" +
	"\x12CreateImageRequest\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x18\n" +
	"\aquality\x18\x02 \x01(\tR\aquality\"F\n" +
	"\x13CreateImageResponse\x12\x1b\n" +
	"\tmime_type\x18\x01 \x01(\tR\bmimeType\x12\x12\n" +
	"\x04data\x18\x02 \x01(\fR\x04data\"7\n" +
	"\aMessage\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"f\n" +
	"\x16SummarizeThreadRequest\x126\n" +
	"\bmessages\x18\x01 \x03(\v2\x1a.lumen.provider.v1.MessageR\bmessages\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\"3\n" +
	"\x17SummarizeThreadResponse\x12\x18\n" +
	"\asummary\x18\x01 \x01(\tR\asummary\"U\n" +
	"\x10AttachmentPolicy\x12\x1b\n" +
	"\tmax_count\x18\x01 \x01(\x05R\bmaxCount\x12$\n" +
	"\x0emax_text_chars\x18\x02 \x01(\x05R\fmaxTextChars\"\xd8\x01\n" +
	"\x14GenerateReplyRequest\x124\n" +
	"\ahistory\x18\x01 \x03(\v2\x1a.lumen.provider.v1.MessageR\ahistory\x12\x18\n" +
	"\asummary\x18\x02 \x01(\tR\asummary\x12\x1d\n" +
	"\n" +
	"user_input\x18\x03 \x01(\tR\tuserInput\x12;\n" +
	"\x06policy\x18\x04 \x01(\v2#.lumen.provider.v1.AttachmentPolicyR\x06policy\x12\x14\n" +
	"\x05model\x18\x05 \x01(\tR\x05model\"\xa7\x01\n" +
	"\x0fReplyAttachment\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\x12+\n" +
	"\x11image_description\x18\x04 \x01(\tR\x10imageDescription\x12#\n" +
	"\rimage_quality\x18\x05 \x01(\tR\fimageQuality\"w\n" +
	"\x15GenerateReplyResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\x12D\n" +
	"\vattachments\x18\x02 \x03(\v2\".lumen.provider.v1.ReplyAttachmentR\vattachments2\xf2\x04\n" +
	"\x0fProviderService\x12h\n" +
	"\x0fCorrectSpelling\x12).lumen.provider.v1.CorrectSpellingRequest\x1a*.lumen.provider.v1.CorrectSpellingResponse\x12e\n" +
	"\x0eResolveIntents\x12(.lumen.provider.v1.ResolveIntentsRequest\x1a).lumen.provider.v1.ResolveIntentsResponse\x12b\n" +
	"\rCreateArticle\x12'.lumen.provider.v1.CreateArticleRequest\x1a(.lumen.provider.v1.CreateArticleResponse\x12\\\n" +
	"\vCreateImage\x12%.lumen.provider.v1.CreateImageRequest\x1a&.lumen.provider.v1.CreateImageResponse\x12h\n" +
	"\x0fSummarizeThread\x12).lumen.provider.v1.SummarizeThreadRequest\x1a*.lumen.provider.v1.SummarizeThreadResponse\x12b\n" +
	"\rGenerateReply\x12'.lumen.provider.v1.GenerateReplyRequest\x1a(.lumen.provider.v1.GenerateReplyResponseB\"Z github.com/lumenlabs/lumen/protob\x06proto3"

var (
	file_provider_proto_rawDescOnce sync.Once
	file_provider_proto_rawDescData []byte
)

func file_provider_proto_rawDescGZIP() []byte {
	file_provider_proto_rawDescOnce.Do(func() {
		file_provider_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_provider_proto_rawDesc), len(file_provider_proto_rawDesc)))
	})
	return file_provider_proto_rawDescData
}

var file_provider_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_provider_proto_goTypes = []any{
	(*CorrectSpellingRequest)(nil),  // 0: lumen.provider.v1.CorrectSpellingRequest
	(*CorrectSpellingResponse)(nil), // 1: lumen.provider.v1.CorrectSpellingResponse
	(*ResolveIntentsRequest)(nil),   // 2: lumen.provider.v1.ResolveIntentsRequest
	(*IntentItem)(nil),              // 3: lumen.provider.v1.IntentItem
	(*ResolveIntentsResponse)(nil),  // 4: lumen.provider.v1.ResolveIntentsResponse
	(*CreateArticleRequest)(nil),    // 5: lumen.provider.v1.CreateArticleRequest
	(*Recommendation)(nil),          // 6: lumen.provider.v1.Recommendation
	(*CreateArticleResponse)(nil),   // 7: lumen.provider.v1.CreateArticleResponse
	(*CreateImageRequest)(nil),      // 8: lumen.provider.v1.CreateImageRequest
	(*CreateImageResponse)(nil),     // 9: lumen.provider.v1.CreateImageResponse
	(*Message)(nil),                 // 10: lumen.provider.v1.Message
	(*SummarizeThreadRequest)(nil),  // 11: lumen.provider.v1.SummarizeThreadRequest
	(*SummarizeThreadResponse)(nil), // 12: lumen.provider.v1.SummarizeThreadResponse
	(*AttachmentPolicy)(nil),        // 13: lumen.provider.v1.AttachmentPolicy
	(*GenerateReplyRequest)(nil),    // 14: lumen.provider.v1.GenerateReplyRequest
	(*ReplyAttachment)(nil),         // 15: lumen.provider.v1.ReplyAttachment
	(*GenerateReplyResponse)(nil),   // 16: lumen.provider.v1.GenerateReplyResponse
}
var file_provider_proto_depIdxs = []int32{
	3,  // 0: lumen.provider.v1.ResolveIntentsResponse.items:type_name -> lumen.provider.v1.IntentItem
	6,  // 1: lumen.provider.v1.CreateArticleResponse.recommendations:type_name -> lumen.provider.v1.Recommendation
	10, // 2: lumen.provider.v1.SummarizeThreadRequest.messages:type_name -> lumen.provider.v1.Message
	10, // 3: lumen.provider.v1.GenerateReplyRequest.history:type_name -> lumen.provider.v1.Message
	13, // 4: lumen.provider.v1.GenerateReplyRequest.policy:type_name -> lumen.provider.v1.AttachmentPolicy
	15, // 5: lumen.provider.v1.GenerateReplyResponse.attachments:type_name -> lumen.provider.v1.ReplyAttachment
	0,  // 6: lumen.provider.v1.ProviderService.CorrectSpelling:input_type -> lumen.provider.v1.CorrectSpellingRequest
	2,  // 7: lumen.provider.v1.ProviderService.ResolveIntents:input_type -> lumen.provider.v1.ResolveIntentsRequest
	5,  // 8: lumen.provider.v1.ProviderService.CreateArticle:input_type -> lumen.provider.v1.CreateArticleRequest
	8,  // 9: lumen.provider.v1.ProviderService.CreateImage:input_type -> lumen.provider.v1.CreateImageRequest
	11, // 10: lumen.provider.v1.ProviderService.SummarizeThread:input_type -> lumen.provider.v1.SummarizeThreadRequest
	14, // 11: lumen.provider.v1.ProviderService.GenerateReply:input_type -> lumen.provider.v1.GenerateReplyRequest
	1,  // 12: lumen.provider.v1.ProviderService.CorrectSpelling:output_type -> lumen.provider.v1.CorrectSpellingResponse
	4,  // 13: lumen.provider.v1.ProviderService.ResolveIntents:output_type -> lumen.provider.v1.ResolveIntentsResponse
	7,  // 14: lumen.provider.v1.ProviderService.CreateArticle:output_type -> lumen.provider.v1.CreateArticleResponse
	9,  // 15: lumen.provider.v1.ProviderService.CreateImage:output_type -> lumen.provider.v1.CreateImageResponse
	12, // 16: lumen.provider.v1.ProviderService.SummarizeThread:output_type -> lumen.provider.v1.SummarizeThreadResponse
	16, // 17: lumen.provider.v1.ProviderService.GenerateReply:output_type -> lumen.provider.v1.GenerateReplyResponse
	12, // [12:18] is the sub-list for method output_type
	6,  // [6:12] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_provider_proto_init() }
func file_provider_proto_init() {
	if File_provider_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_provider_proto_rawDesc), len(file_provider_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_provider_proto_goTypes,
		DependencyIndexes: file_provider_proto_depIdxs,
		MessageInfos:      file_provider_proto_msgTypes,
	}.Build()
	File_provider_proto = out.File
	file_provider_proto_goTypes = nil
	file_provider_proto_depIdxs = nil
}
