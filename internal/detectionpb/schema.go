// Package detectionpb holds the wire representation of detection lists and
// its protobuf codec.
//
// The schema in proto/detections/v1/detections.proto is compiled at package
// initialisation from a FileDescriptorProto, and messages are encoded through
// dynamicpb. No protoc step is needed to build the module.
package detectionpb

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// SchemaPath is the registered path of the compiled schema file.
const SchemaPath = "detections/v1/detections.proto"

// SchemaPackage is the protobuf package of the wire messages.
const SchemaPackage protoreflect.FullName = "detections.v1"

// Field numbers. These are part of the binary contract.
const (
	DetectionListUIDNumber        protoreflect.FieldNumber = 1
	DetectionListDetectionsNumber protoreflect.FieldNumber = 2

	DetectionTimestampNumber  protoreflect.FieldNumber = 1
	DetectionNumberNumber     protoreflect.FieldNumber = 2
	DetectionXNumber          protoreflect.FieldNumber = 3
	DetectionYNumber          protoreflect.FieldNumber = 4
	DetectionMatrixRowsNumber protoreflect.FieldNumber = 5

	MatrixRowValuesNumber protoreflect.FieldNumber = 1
)

var (
	schemaFile protoreflect.FileDescriptor

	detectionListDesc protoreflect.MessageDescriptor
	detectionDesc     protoreflect.MessageDescriptor
	matrixRowDesc     protoreflect.MessageDescriptor

	listUIDField        protoreflect.FieldDescriptor
	listDetectionsField protoreflect.FieldDescriptor

	detTimestampField  protoreflect.FieldDescriptor
	detNumberField     protoreflect.FieldDescriptor
	detXField          protoreflect.FieldDescriptor
	detYField          protoreflect.FieldDescriptor
	detMatrixRowsField protoreflect.FieldDescriptor

	rowValuesField protoreflect.FieldDescriptor
)

func init() {
	fd, err := CompileSchema()
	if err != nil {
		panic(fmt.Sprintf("detectionpb: compile schema: %v", err))
	}
	schemaFile = fd

	msgs := fd.Messages()
	matrixRowDesc = msgs.ByName("MatrixRow")
	detectionDesc = msgs.ByName("Detection")
	detectionListDesc = msgs.ByName("DetectionList")

	listUIDField = detectionListDesc.Fields().ByNumber(DetectionListUIDNumber)
	listDetectionsField = detectionListDesc.Fields().ByNumber(DetectionListDetectionsNumber)

	detTimestampField = detectionDesc.Fields().ByNumber(DetectionTimestampNumber)
	detNumberField = detectionDesc.Fields().ByNumber(DetectionNumberNumber)
	detXField = detectionDesc.Fields().ByNumber(DetectionXNumber)
	detYField = detectionDesc.Fields().ByNumber(DetectionYNumber)
	detMatrixRowsField = detectionDesc.Fields().ByNumber(DetectionMatrixRowsNumber)

	rowValuesField = matrixRowDesc.Fields().ByNumber(MatrixRowValuesNumber)
}

// FileDescriptor returns the compiled schema.
func FileDescriptor() protoreflect.FileDescriptor { return schemaFile }

// CompileSchema builds a fresh file descriptor from SchemaProto.
func CompileSchema() (protoreflect.FileDescriptor, error) {
	return protodesc.NewFile(SchemaProto(), new(protoregistry.Files))
}

// SchemaProto returns the descriptor equivalent of detections.proto.
func SchemaProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(SchemaPath),
		Package: proto.String(string(SchemaPackage)),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/banshee-data/detections/internal/detectionpb"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("MatrixRow"),
				Field: []*descriptorpb.FieldDescriptorProto{
					repeatedField("values", "values", MatrixRowValuesNumber, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE, ""),
				},
			},
			{
				Name: proto.String("Detection"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("timestamp", "timestamp", DetectionTimestampNumber, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
					scalarField("number", "number", DetectionNumberNumber, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
					scalarField("x", "x", DetectionXNumber, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
					scalarField("y", "y", DetectionYNumber, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
					repeatedField("matrix_rows", "matrixRows", DetectionMatrixRowsNumber, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "."+string(SchemaPackage)+".MatrixRow"),
				},
			},
			{
				Name: proto.String("DetectionList"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("uid", "uid", DetectionListUIDNumber, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					repeatedField("detections", "detections", DetectionListDetectionsNumber, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "."+string(SchemaPackage)+".Detection"),
				},
			},
		},
	}
}

func scalarField(name, jsonName string, num protoreflect.FieldNumber, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(jsonName),
		Number:   proto.Int32(int32(num)),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     typ.Enum(),
	}
}

func repeatedField(name, jsonName string, num protoreflect.FieldNumber, typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
	f := &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(jsonName),
		Number:   proto.Int32(int32(num)),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
		Type:     typ.Enum(),
	}
	if typeName != "" {
		f.TypeName = proto.String(typeName)
	}
	return f
}
