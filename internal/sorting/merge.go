package sorting

// Merge is a top-down merge sort that merges in place: a right element that
// belongs before the left run is moved there by shifting the run right.
func Merge(nums []int, rec Recorder) {
	if len(nums) > 1 {
		mergeSort(nums, 0, len(nums)-1, rec)
	}
	emit(rec, Noop(), nums)
}

func mergeSort(nums []int, low, high int, rec Recorder) {
	if low >= high {
		return
	}
	mid := low + (high-low)/2
	mergeSort(nums, low, mid, rec)
	mergeSort(nums, mid+1, high, rec)
	merge(nums, low, mid, high, rec)
}

func merge(nums []int, low, mid, high int, rec Recorder) {
	i, j := low, mid+1
	for i <= mid && j <= high {
		emit(rec, Compare(i, j), nums)
		if nums[i] <= nums[j] {
			i++
			continue
		}
		v := nums[j]
		copy(nums[i+1:mid+2], nums[i:mid+1])
		nums[i] = v
		emit(rec, Insert(i), nums)

		i++
		j++
		mid++
	}
}
